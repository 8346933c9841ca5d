package main

import (
	"fmt"
	"io/fs"
	"log"
	"path/filepath"
	"strings"
	"time"

	"os"

	"team-feedback-backend/internal/config"
	"team-feedback-backend/internal/database"
	"team-feedback-backend/internal/database/models"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type UserData struct {
	Email     string `yaml:"email"`
	FirstName string `yaml:"first_name"`
	LastName  string `yaml:"last_name"`
	Role      string `yaml:"role"`
}

type RosterEntry struct {
	Email    string `yaml:"email"`
	Nickname string `yaml:"nickname,omitempty"`
	Jersey   string `yaml:"jersey,omitempty"`
}

type TeamData struct {
	Name        string        `yaml:"name"`
	Nickname    string        `yaml:"nickname,omitempty"`
	Sport       string        `yaml:"sport,omitempty"`
	AccessCode  string        `yaml:"access_code"`
	CoachEmails []string      `yaml:"coach_emails"`
	Players     []RosterEntry `yaml:"players,omitempty"`
}

type KeyMomentData struct {
	FrameStart float64 `yaml:"frame_start"`
	FrameEnd   float64 `yaml:"frame_end"`
	Text       string  `yaml:"text"`
	Confidence float64 `yaml:"confidence"`
	// Player emails entitled to the moment; empty means the whole roster
	FeedbackFor []string `yaml:"feedback_for,omitempty"`
}

type GameData struct {
	TeamName   string          `yaml:"team_name"`
	Title      string          `yaml:"title"`
	Location   string          `yaml:"location,omitempty"`
	KeyMoments []KeyMomentData `yaml:"key_moments,omitempty"`
}

// File structures
type UsersFile struct {
	Users []UserData `yaml:"users"`
}

type TeamsFile struct {
	Teams []TeamData `yaml:"teams"`
}

type GamesFile struct {
	Games []GameData `yaml:"games"`
}

func main() {
	log.Println("🚀 Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Load data from YAML files
	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("✅ Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Suppress verbose GORM logging during data loading
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	users, err := loadUsers(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load users: %w", err)
	}

	teams, err := loadTeams(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load teams: %w", err)
	}

	games, err := loadGames(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load games: %w", err)
	}

	// Create users first; players get a linked profile
	userMap := make(map[string]*models.User)
	playerMap := make(map[string]*models.Player)
	userCreated := 0
	for _, userData := range users {
		user, created, err := createUser(db, userData)
		if err != nil {
			return fmt.Errorf("failed to create user %s: %w", userData.Email, err)
		}
		userMap[userData.Email] = user
		if user.Role == models.UserRolePlayer {
			player, err := ensurePlayer(db, user.ID)
			if err != nil {
				return fmt.Errorf("failed to create player profile for %s: %w", userData.Email, err)
			}
			playerMap[userData.Email] = player
		}
		if created {
			userCreated++
		}
	}
	log.Printf("📋 Users: %d created, %d total", userCreated, len(users))

	// Create teams with their coaches and enrollments
	teamMap := make(map[string]*models.Team)
	teamCreated := 0
	for _, teamData := range teams {
		team, created, err := createTeam(db, teamData, userMap, playerMap)
		if err != nil {
			return fmt.Errorf("failed to create team %s: %w", teamData.Name, err)
		}
		teamMap[teamData.Name] = team
		if created {
			teamCreated++
		}
	}
	log.Printf("📋 Teams: %d created, %d total", teamCreated, len(teams))

	// Create games with their key moments and transcripts
	gameCreated := 0
	for _, gameData := range games {
		_, created, err := createGame(db, gameData, teamMap, playerMap)
		if err != nil {
			log.Printf("⚠️  Warning: failed to create game %s: %v", gameData.Title, err)
			continue // Continue with other games
		}
		if created {
			gameCreated++
		}
	}
	log.Printf("📋 Games: %d created, %d total", gameCreated, len(games))

	return nil
}

func loadUsers(dataDir string) ([]UserData, error) {
	var allUsers []UserData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "users") {
			var file UsersFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allUsers = append(allUsers, file.Users...)
		}
		return nil
	})

	return allUsers, err
}

func loadTeams(dataDir string) ([]TeamData, error) {
	var allTeams []TeamData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "teams") {
			var file TeamsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allTeams = append(allTeams, file.Teams...)
		}
		return nil
	})

	return allTeams, err
}

func loadGames(dataDir string) ([]GameData, error) {
	var allGames []GameData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "games") {
			var file GamesFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allGames = append(allGames, file.Games...)
		}
		return nil
	})

	return allGames, err
}

func createUser(db *gorm.DB, userData UserData) (*models.User, bool, error) {
	var user models.User
	if err := db.Where("email = ?", userData.Email).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			user = models.User{
				Email:     userData.Email,
				FirstName: userData.FirstName,
				LastName:  userData.LastName,
				Role:      models.UserRole(userData.Role),
			}

			if err := db.Create(&user).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create user: %w", err)
			}
			return &user, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query user: %w", err)
		}
	}

	return &user, false, nil // created = false (existing)
}

func ensurePlayer(db *gorm.DB, userID uuid.UUID) (*models.Player, error) {
	var player models.Player
	if err := db.Where("user_id = ?", userID).First(&player).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			player = models.Player{UserID: userID}
			if err := db.Create(&player).Error; err != nil {
				return nil, fmt.Errorf("failed to create player: %w", err)
			}
			return &player, nil
		}
		return nil, fmt.Errorf("failed to query player: %w", err)
	}
	return &player, nil
}

func createTeam(db *gorm.DB, teamData TeamData, userMap map[string]*models.User, playerMap map[string]*models.Player) (*models.Team, bool, error) {
	var team models.Team
	created := false
	if err := db.Where("access_code = ?", teamData.AccessCode).First(&team).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			team = models.Team{
				Name:       teamData.Name,
				Nickname:   teamData.Nickname,
				Sport:      teamData.Sport,
				AccessCode: teamData.AccessCode,
			}

			if err := db.Create(&team).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create team: %w", err)
			}
			created = true
		} else {
			return nil, false, fmt.Errorf("failed to query team: %w", err)
		}
	}

	for _, email := range teamData.CoachEmails {
		coach := userMap[email]
		if coach == nil {
			return nil, false, fmt.Errorf("coach %s not found for team %s", email, teamData.Name)
		}
		var link models.TeamCoach
		err := db.Where("team_id = ? AND user_id = ?", team.ID, coach.ID).First(&link).Error
		if err == gorm.ErrRecordNotFound {
			link = models.TeamCoach{TeamID: team.ID, UserID: coach.ID}
			if err := db.Create(&link).Error; err != nil {
				return nil, false, fmt.Errorf("failed to link coach %s: %w", email, err)
			}
		} else if err != nil {
			return nil, false, fmt.Errorf("failed to query coach link: %w", err)
		}
	}

	for _, entry := range teamData.Players {
		player := playerMap[entry.Email]
		if player == nil {
			return nil, false, fmt.Errorf("player %s not found for team %s", entry.Email, teamData.Name)
		}
		var enrollment models.Enrollment
		err := db.Where("team_id = ? AND player_id = ?", team.ID, player.ID).First(&enrollment).Error
		if err == gorm.ErrRecordNotFound {
			enrollment = models.Enrollment{
				TeamID:   team.ID,
				PlayerID: player.ID,
				Nickname: entry.Nickname,
				Jersey:   entry.Jersey,
			}
			if err := db.Create(&enrollment).Error; err != nil {
				return nil, false, fmt.Errorf("failed to enroll player %s: %w", entry.Email, err)
			}
		} else if err != nil {
			return nil, false, fmt.Errorf("failed to query enrollment: %w", err)
		}
	}

	return &team, created, nil
}

func createGame(db *gorm.DB, gameData GameData, teamMap map[string]*models.Team, playerMap map[string]*models.Player) (*models.Game, bool, error) {
	team := teamMap[gameData.TeamName]
	if team == nil {
		return nil, false, fmt.Errorf("team %s not found for game %s", gameData.TeamName, gameData.Title)
	}

	var game models.Game
	if err := db.Where("team_id = ? AND title = ?", team.ID, gameData.Title).First(&game).Error; err != nil {
		if err != gorm.ErrRecordNotFound {
			return nil, false, fmt.Errorf("failed to query game: %w", err)
		}
	} else {
		return &game, false, nil // created = false (existing, moments assumed seeded)
	}

	game = models.Game{
		TeamID:   team.ID,
		Title:    gameData.Title,
		Location: gameData.Location,
	}
	if err := db.Create(&game).Error; err != nil {
		return nil, false, fmt.Errorf("failed to create game: %w", err)
	}

	for _, momentData := range gameData.KeyMoments {
		recipients, err := resolveRecipients(db, momentData.FeedbackFor, team.ID, playerMap)
		if err != nil {
			return nil, false, err
		}

		moment := models.KeyMoment{
			GameID:      game.ID,
			FrameStart:  momentData.FrameStart,
			FrameEnd:    momentData.FrameEnd,
			FeedbackFor: recipients,
		}
		if err := db.Create(&moment).Error; err != nil {
			return nil, false, fmt.Errorf("failed to create key moment: %w", err)
		}

		transcript := models.Transcript{
			KeyMomentID: moment.ID,
			GameID:      game.ID,
			Text:        momentData.Text,
			Confidence:  momentData.Confidence,
		}
		if err := db.Create(&transcript).Error; err != nil {
			return nil, false, fmt.Errorf("failed to create transcript: %w", err)
		}
	}

	return &game, true, nil
}

// resolveRecipients maps player emails to ids; an empty list means the
// moment addresses the whole roster of the team.
func resolveRecipients(db *gorm.DB, emails []string, teamID uuid.UUID, playerMap map[string]*models.Player) (models.UUIDList, error) {
	if len(emails) == 0 {
		var enrollments []models.Enrollment
		if err := db.Where("team_id = ?", teamID).Find(&enrollments).Error; err != nil {
			return nil, fmt.Errorf("failed to load roster: %w", err)
		}
		ids := make(models.UUIDList, 0, len(enrollments))
		for _, enrollment := range enrollments {
			ids = append(ids, enrollment.PlayerID)
		}
		return ids, nil
	}

	ids := make(models.UUIDList, 0, len(emails))
	for _, email := range emails {
		player := playerMap[email]
		if player == nil {
			return nil, fmt.Errorf("player %s not found", email)
		}
		ids = append(ids, player.ID)
	}
	return ids, nil
}
