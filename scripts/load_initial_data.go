package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"bowls-club-backend/internal/config"
	"bowls-club-backend/internal/database"
	"bowls-club-backend/internal/database/models"
	"bowls-club-backend/internal/repository"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type ClubData struct {
	Name            string `yaml:"name"`
	ShortName       string `yaml:"short_name"`
	Location        string `yaml:"location"`
	ContactEmail    string `yaml:"contact_email,omitempty"`
	ContactPhone    string `yaml:"contact_phone,omitempty"`
	Website         string `yaml:"website,omitempty"`
	EstablishedYear int    `yaml:"established_year,omitempty"`
}

type CompetitionData struct {
	Name            string `yaml:"name"`
	CompetitionType string `yaml:"competition_type"`
}

type OppositionTeamData struct {
	Name         string   `yaml:"name"`
	Location     string   `yaml:"location,omitempty"`
	ContactEmail string   `yaml:"contact_email,omitempty"`
	ContactPhone string   `yaml:"contact_phone,omitempty"`
	Competitions []string `yaml:"competitions,omitempty"`
}

type MemberData struct {
	FirstName string `yaml:"first_name"`
	LastName  string `yaml:"last_name"`
	Team      string `yaml:"team"`
	Role      string `yaml:"role,omitempty"`
	Email     string `yaml:"email"`
	Phone     string `yaml:"phone"`
}

// File structures
type ClubFile struct {
	Club *ClubData `yaml:"club"`
}

type CompetitionsFile struct {
	Competitions []CompetitionData `yaml:"competitions"`
}

type OppositionTeamsFile struct {
	OppositionTeams []OppositionTeamData `yaml:"opposition_teams"`
}

type MembersFile struct {
	Members []MemberData `yaml:"members"`
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

	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("✅ Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
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
	var clubFile ClubFile
	if err := readYAMLFiles(dataDir, "club", func(data []byte) error {
		return yaml.Unmarshal(data, &clubFile)
	}); err != nil {
		return fmt.Errorf("failed to load club: %w", err)
	}

	var competitions []CompetitionData
	if err := readYAMLFiles(dataDir, "competitions", func(data []byte) error {
		var file CompetitionsFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return err
		}
		competitions = append(competitions, file.Competitions...)
		return nil
	}); err != nil {
		return fmt.Errorf("failed to load competitions: %w", err)
	}

	var teams []OppositionTeamData
	if err := readYAMLFiles(dataDir, "opposition_teams", func(data []byte) error {
		var file OppositionTeamsFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return err
		}
		teams = append(teams, file.OppositionTeams...)
		return nil
	}); err != nil {
		return fmt.Errorf("failed to load opposition teams: %w", err)
	}

	var members []MemberData
	if err := readYAMLFiles(dataDir, "members", func(data []byte) error {
		var file MembersFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return err
		}
		members = append(members, file.Members...)
		return nil
	}); err != nil {
		return fmt.Errorf("failed to load members: %w", err)
	}

	clubs := repository.NewOwnClubRepository(db)
	competitionRepo := repository.NewCompetitionRepository(db)
	teamRepo := repository.NewOppositionTeamRepository(db)
	memberRepo := repository.NewMemberRepository(db)

	if clubFile.Club != nil {
		created, err := createClub(clubs, *clubFile.Club)
		if err != nil {
			return fmt.Errorf("failed to create club profile: %w", err)
		}
		log.Printf("📋 Club profile: created=%t", created)
	}

	competitionMap := make(map[string]*models.Competition)
	competitionCreated := 0
	for _, competitionData := range competitions {
		competition, created, err := createCompetition(competitionRepo, competitionData)
		if err != nil {
			return fmt.Errorf("failed to create competition %s: %w", competitionData.Name, err)
		}
		competitionMap[competitionData.Name] = competition
		if created {
			competitionCreated++
		}
	}
	log.Printf("📋 Competitions: %d created, %d total", competitionCreated, len(competitions))

	teamCreated := 0
	for _, teamData := range teams {
		created, err := createOppositionTeam(teamRepo, teamData, competitionMap)
		if err != nil {
			log.Printf("⚠️  Warning: failed to create opposition team %s: %v", teamData.Name, err)
			continue
		}
		if created {
			teamCreated++
		}
	}
	log.Printf("📋 Opposition teams: %d created, %d total", teamCreated, len(teams))

	memberCreated := 0
	for _, memberData := range members {
		created, err := createMember(memberRepo, memberData)
		if err != nil {
			log.Printf("⚠️  Warning: failed to create member %s %s: %v", memberData.FirstName, memberData.LastName, err)
			continue
		}
		if created {
			memberCreated++
		}
	}
	log.Printf("📋 Members: %d created, %d total", memberCreated, len(members))

	return nil
}

// readYAMLFiles calls parse with the contents of every .yaml file under
// dataDir whose name starts with prefix
func readYAMLFiles(dataDir, prefix string, parse func([]byte) error) error {
	return filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".yaml") || !strings.HasPrefix(d.Name(), prefix) {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		if err := parse(data); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		return nil
	})
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// createClub creates the club profile unless one already exists
func createClub(clubs repository.OwnClubRepositoryInterface, clubData ClubData) (bool, error) {
	count, err := clubs.Count()
	if err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	club := models.OwnClub{
		Name:         clubData.Name,
		ShortName:    clubData.ShortName,
		Location:     clubData.Location,
		ContactEmail: optional(clubData.ContactEmail),
		ContactPhone: optional(clubData.ContactPhone),
		Website:      optional(clubData.Website),
	}
	if clubData.EstablishedYear != 0 {
		year := clubData.EstablishedYear
		club.EstablishedYear = &year
	}
	if err := clubs.Create(&club); err != nil {
		return false, err
	}
	return true, nil
}

func createCompetition(repo repository.CompetitionRepositoryInterface, competitionData CompetitionData) (*models.Competition, bool, error) {
	competitionType := models.CompetitionType(competitionData.CompetitionType)
	if competitionType == "" {
		competitionType = models.CompetitionTypeKnockout
	}
	if !competitionType.IsValid() {
		return nil, false, fmt.Errorf("unknown competition type %q", competitionData.CompetitionType)
	}

	existing, err := repo.GetByName(competitionData.Name)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("failed to query competition: %w", err)
	}

	competition := &models.Competition{Name: competitionData.Name, CompetitionType: competitionType}
	if err := repo.Create(competition); err != nil {
		return nil, false, err
	}
	return competition, true, nil
}

func createOppositionTeam(repo repository.OppositionTeamRepositoryInterface, teamData OppositionTeamData, competitionMap map[string]*models.Competition) (bool, error) {
	var competitionIDs []uuid.UUID
	for _, name := range teamData.Competitions {
		competition := competitionMap[name]
		if competition == nil {
			return false, fmt.Errorf("competition %s not found", name)
		}
		competitionIDs = append(competitionIDs, competition.ID)
	}

	existing, err := repo.GetByName(teamData.Name)
	if err == nil {
		// Existing teams gain any competitions missing from their list
		if len(competitionIDs) == 0 {
			return false, nil
		}
		ids := make([]uuid.UUID, 0, len(existing.Competitions)+len(competitionIDs))
		for _, c := range existing.Competitions {
			ids = append(ids, c.ID)
		}
		if err := repo.SetCompetitions(existing.ID, append(ids, competitionIDs...)); err != nil {
			return false, err
		}
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("failed to query opposition team: %w", err)
	}

	team := &models.OppositionTeam{
		Name:         teamData.Name,
		Location:     optional(teamData.Location),
		ContactEmail: optional(teamData.ContactEmail),
		ContactPhone: optional(teamData.ContactPhone),
	}
	if err := repo.Create(team, competitionIDs); err != nil {
		return false, err
	}
	return true, nil
}

// createMember creates a member unless one with the same email exists
func createMember(repo repository.MemberRepositoryInterface, memberData MemberData) (bool, error) {
	if memberData.Email == "" {
		return false, errors.New("email is required")
	}

	member := models.Member{
		FirstName: memberData.FirstName,
		LastName:  memberData.LastName,
		Team:      models.MemberTeam(memberData.Team),
		Role:      models.MemberRole(memberData.Role),
		Email:     memberData.Email,
		Phone:     memberData.Phone,
	}
	if member.Role == "" {
		member.Role = models.MemberRolePlayer
	}
	member.NormalizeRole()

	if !member.Team.IsValid() {
		return false, fmt.Errorf("unknown team %q", memberData.Team)
	}
	if !member.Role.IsValid() {
		return false, fmt.Errorf("unknown role %q", memberData.Role)
	}

	_, err := repo.GetByEmail(member.Email)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("failed to query member: %w", err)
	}

	if err := repo.Create(&member); err != nil {
		return false, err
	}
	return true, nil
}
