package main

import (
	"fmt"
	"io/fs"
	"log"
	"path/filepath"
	"strings"
	"time"

	"os"

	"roster-backend/internal/config"
	"roster-backend/internal/database"
	"roster-backend/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type OrganizationData struct {
	Name string `yaml:"name"`
}

type BusinessData struct {
	Name             string `yaml:"name"`
	OrganizationName string `yaml:"organization_name"`
}

type EmployeeData struct {
	Name             string `yaml:"name"`
	OrganizationName string `yaml:"organization_name"`
	Email            string `yaml:"email"`
	Role             string `yaml:"role"`
}

type AvailabilityData struct {
	EmployeeEmail string `yaml:"employee_email"`
	DayOfWeek     string `yaml:"day_of_week"`
	ShiftTime     string `yaml:"shift_time"`
	IsAvailable   bool   `yaml:"is_available"`
}

// File structures
type OrganizationsFile struct {
	Organizations []OrganizationData `yaml:"organizations"`
}

type BusinessesFile struct {
	Businesses []BusinessData `yaml:"businesses"`
}

type EmployeesFile struct {
	Employees []EmployeeData `yaml:"employees"`
}

type AvailabilityFile struct {
	Availability []AvailabilityData `yaml:"availability"`
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
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	organizations, err := loadOrganizations(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load organizations: %w", err)
	}

	businesses, err := loadBusinesses(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load businesses: %w", err)
	}

	employees, err := loadEmployees(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load employees: %w", err)
	}

	availability, err := loadAvailability(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load availability: %w", err)
	}

	// Create organizations first
	orgMap := make(map[string]*models.Organization)
	orgCreated := 0
	for _, orgData := range organizations {
		org, created, err := createOrganization(db, orgData)
		if err != nil {
			return fmt.Errorf("failed to create organization %s: %w", orgData.Name, err)
		}
		orgMap[orgData.Name] = org
		if created {
			orgCreated++
		}
	}
	log.Printf("📋 Organizations: %d created, %d total", orgCreated, len(organizations))

	// Create businesses
	businessCreated := 0
	for _, businessData := range businesses {
		_, created, err := createBusiness(db, businessData, orgMap)
		if err != nil {
			return fmt.Errorf("failed to create business %s: %w", businessData.Name, err)
		}
		if created {
			businessCreated++
		}
	}
	log.Printf("📋 Businesses: %d created, %d total", businessCreated, len(businesses))

	// Create employees
	employeeMap := make(map[string]*models.Employee)
	employeeCreated := 0
	for _, employeeData := range employees {
		employee, created, err := createEmployee(db, employeeData, orgMap)
		if err != nil {
			return fmt.Errorf("failed to create employee %s: %w", employeeData.Name, err)
		}
		employeeMap[employeeData.Email] = employee
		if created {
			employeeCreated++
		}
	}
	log.Printf("📋 Employees: %d created, %d total", employeeCreated, len(employees))

	// Create availability declarations
	availabilityCreated := 0
	for _, availabilityData := range availability {
		created, err := createAvailability(db, availabilityData, employeeMap)
		if err != nil {
			log.Printf("⚠️  Warning: failed to create availability for %s: %v", availabilityData.EmployeeEmail, err)
			continue
		}
		if created {
			availabilityCreated++
		}
	}
	log.Printf("📋 Availability entries: %d created, %d total", availabilityCreated, len(availability))

	return nil
}

func loadOrganizations(dataDir string) ([]OrganizationData, error) {
	var allOrgs []OrganizationData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "organizations") {
			var file OrganizationsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allOrgs = append(allOrgs, file.Organizations...)
		}
		return nil
	})

	return allOrgs, err
}

func loadBusinesses(dataDir string) ([]BusinessData, error) {
	var allBusinesses []BusinessData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "businesses") {
			var file BusinessesFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allBusinesses = append(allBusinesses, file.Businesses...)
		}
		return nil
	})

	return allBusinesses, err
}

func loadEmployees(dataDir string) ([]EmployeeData, error) {
	var allEmployees []EmployeeData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "employees") {
			var file EmployeesFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allEmployees = append(allEmployees, file.Employees...)
		}
		return nil
	})

	return allEmployees, err
}

func loadAvailability(dataDir string) ([]AvailabilityData, error) {
	var allAvailability []AvailabilityData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "availability") {
			var file AvailabilityFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allAvailability = append(allAvailability, file.Availability...)
		}
		return nil
	})

	return allAvailability, err
}

func createOrganization(db *gorm.DB, orgData OrganizationData) (*models.Organization, bool, error) {
	var org models.Organization
	if err := db.Where("name = ?", orgData.Name).First(&org).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			org = models.Organization{
				Name: orgData.Name,
			}

			if err := db.Create(&org).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create organization: %w", err)
			}
			return &org, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query organization: %w", err)
		}
	}

	return &org, false, nil // created = false (existing)
}

func createBusiness(db *gorm.DB, businessData BusinessData, orgMap map[string]*models.Organization) (*models.Business, bool, error) {
	org := orgMap[businessData.OrganizationName]
	if org == nil {
		return nil, false, fmt.Errorf("organization %s not found for business %s", businessData.OrganizationName, businessData.Name)
	}

	var business models.Business
	if err := db.Where("name = ? AND organization_id = ?", businessData.Name, org.ID).First(&business).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			business = models.Business{
				OrganizationID: org.ID,
				Name:           businessData.Name,
			}

			if err := db.Create(&business).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create business: %w", err)
			}
			return &business, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query business: %w", err)
		}
	}

	return &business, false, nil // created = false (existing)
}

func createEmployee(db *gorm.DB, employeeData EmployeeData, orgMap map[string]*models.Organization) (*models.Employee, bool, error) {
	org := orgMap[employeeData.OrganizationName]
	if org == nil {
		return nil, false, fmt.Errorf("organization %s not found for employee %s", employeeData.OrganizationName, employeeData.Name)
	}

	var employee models.Employee
	if err := db.Where("email = ?", employeeData.Email).First(&employee).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			role := models.RoleWorker
			if employeeData.Role != "" {
				role = models.SystemRole(employeeData.Role)
			}

			employee = models.Employee{
				OrganizationID: org.ID,
				Name:           employeeData.Name,
				Email:          employeeData.Email,
				SystemRole:     role,
			}

			if err := db.Create(&employee).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create employee: %w", err)
			}
			return &employee, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query employee: %w", err)
		}
	}

	return &employee, false, nil // created = false (existing)
}

func createAvailability(db *gorm.DB, availabilityData AvailabilityData, employeeMap map[string]*models.Employee) (bool, error) {
	employee := employeeMap[availabilityData.EmployeeEmail]
	if employee == nil {
		return false, fmt.Errorf("employee %s not found", availabilityData.EmployeeEmail)
	}

	day := models.DayOfWeek(availabilityData.DayOfWeek)
	shiftTime := models.ShiftTime(availabilityData.ShiftTime)
	if !day.IsValid() || !shiftTime.IsValid() {
		return false, fmt.Errorf("invalid slot %s/%s", availabilityData.DayOfWeek, availabilityData.ShiftTime)
	}

	var slot models.AvailabilitySlot
	err := db.Where("employee_id = ? AND day_of_week = ? AND shift_time = ?", employee.ID, day, shiftTime).First(&slot).Error
	if err == gorm.ErrRecordNotFound {
		slot = models.AvailabilitySlot{
			EmployeeID:  employee.ID,
			DayOfWeek:   day,
			ShiftTime:   shiftTime,
			IsAvailable: availabilityData.IsAvailable,
		}
		if err := db.Create(&slot).Error; err != nil {
			return false, fmt.Errorf("failed to create availability slot: %w", err)
		}
		return true, nil // created = true
	} else if err != nil {
		return false, fmt.Errorf("failed to query availability slot: %w", err)
	}

	return false, nil // created = false (existing)
}
