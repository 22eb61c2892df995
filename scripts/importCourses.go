package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"learnhub/config"
	"learnhub/database"
	"learnhub/models"
	"learnhub/utils"
	courseValidator "learnhub/validators/course"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func main() {
	cfg := config.LoadConfig()

	log, err := utils.NewLogger(cfg.IsProduction())
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	path := "courses.csv"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	db, err := database.Connect(cfg, log)
	if err != nil {
		log.Fatal("database connection failed", zap.Error(err))
	}

	file, err := os.Open(path)
	if err != nil {
		log.Fatal("failed to open CSV file", zap.String("path", path), zap.Error(err))
	}
	defer file.Close()

	result, err := importCourses(db, file, log)
	if err != nil {
		log.Fatal("import failed", zap.Error(err))
	}

	log.Info("import complete",
		zap.Int("inserted", result.Inserted),
		zap.Int("skipped", result.Skipped),
		zap.Int("total", result.Inserted+result.Skipped),
	)
}

type importResult struct {
	Inserted int
	Skipped  int
}

var requiredColumns = []string{"title", "description", "category", "level", "instructor_email"}

// importCourses creates one course per CSV row. Rows with missing fields or an
// instructor_email that does not belong to an instructor are skipped.
func importCourses(db *gorm.DB, r io.Reader, log *zap.Logger) (importResult, error) {
	var result importResult

	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return result, errors.New("CSV file is empty")
	}
	if err != nil {
		return result, fmt.Errorf("read header: %w", err)
	}

	headerIndex := make(map[string]int, len(header))
	for i, h := range header {
		headerIndex[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, col := range requiredColumns {
		if _, ok := headerIndex[col]; !ok {
			return result, fmt.Errorf("missing column %q", col)
		}
	}

	// instructor lookups repeat for every row of the same author
	instructors := map[string]*models.User{}

	for line := 2; ; line++ {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return result, fmt.Errorf("line %d: %w", line, err)
		}

		req := courseValidator.CreateCourseRequest{
			Title:       getField(row, headerIndex, "title"),
			Description: getField(row, headerIndex, "description"),
			Category:    getField(row, headerIndex, "category"),
			Level:       getField(row, headerIndex, "level"),
		}
		if fields := utils.ValidateStruct(req); len(fields) > 0 {
			log.Warn("skipping invalid row", zap.Int("line", line), zap.Any("fields", fields))
			result.Skipped++
			continue
		}

		email := getField(row, headerIndex, "instructor_email")
		instructor, err := findInstructor(db, instructors, email)
		if err != nil {
			return result, fmt.Errorf("line %d: %w", line, err)
		}
		if instructor == nil {
			log.Warn("skipping row without instructor", zap.Int("line", line), zap.String("instructor_email", email))
			result.Skipped++
			continue
		}

		course := models.Course{
			Title:        req.Title,
			Description:  req.Description,
			Category:     req.Category,
			Level:        req.Level,
			InstructorID: instructor.ID,
		}
		if err := db.Create(&course).Error; err != nil {
			return result, fmt.Errorf("line %d: insert course %q: %w", line, course.Title, err)
		}
		result.Inserted++
	}

	return result, nil
}

// findInstructor returns nil when email is unknown or belongs to a student
func findInstructor(db *gorm.DB, cache map[string]*models.User, email string) (*models.User, error) {
	if user, ok := cache[email]; ok {
		return user, nil
	}

	var user models.User
	err := db.Where("email = ? AND role = ?", email, models.RoleInstructor).First(&user).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		cache[email] = nil
		return nil, nil
	case err != nil:
		return nil, err
	}

	cache[email] = &user
	return &user, nil
}

func getField(row []string, headerIndex map[string]int, field string) string {
	if idx, ok := headerIndex[field]; ok && idx < len(row) {
		return strings.TrimSpace(row[idx])
	}
	return ""
}
