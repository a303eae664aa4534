package services

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/punjabi-rishtey/admin-api/internal/dto"
	"github.com/punjabi-rishtey/admin-api/internal/models"
	"github.com/punjabi-rishtey/admin-api/internal/profile"
)

var (
	ErrEmailTaken    = errors.New("email already registered")
	ErrInvalidStatus = errors.New("invalid status")
	ErrTooManyPhotos = errors.New("a profile can carry at most 10 photos")
)

const maxProfilePhotos = 10

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// FullProfile is one user with all four secondary aggregates attached, in
// the nested shape the console consumes.
type FullProfile struct {
	models.User
	Astrology  *models.Astrology  `json:"astrology,omitempty"`
	Education  *models.Education  `json:"education,omitempty"`
	Family     *models.Family     `json:"family,omitempty"`
	Profession *models.Profession `json:"profession,omitempty"`
}

// ListByStatus returns users in one lifecycle bucket, or every user for the
// "total" segment. The status arrives lowercased from the console and is
// checked against the closed vocabulary before touching the database.
func (s *UserService) ListByStatus(status string) ([]models.User, error) {
	canonical := canonicalStatus(status)
	if canonical == "Total" {
		var users []models.User
		if err := s.db.Order("register_date DESC").Find(&users).Error; err != nil {
			return nil, fmt.Errorf("failed to list users: %w", err)
		}
		return users, nil
	}
	if !profile.ValidStatus(canonical) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	var users []models.User
	if err := s.db.Where("status = ?", canonical).Order("register_date DESC").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// GetFullProfile assembles the complete nested record for one user.
func (s *UserService) GetFullProfile(userID uuid.UUID) (*FullProfile, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		return nil, ErrUserNotFound
	}

	full := &FullProfile{User: user}

	var astro models.Astrology
	if err := s.db.First(&astro, "user_id = ?", userID).Error; err == nil {
		full.Astrology = &astro
	}
	var edu models.Education
	if err := s.db.First(&edu, "user_id = ?", userID).Error; err == nil {
		full.Education = &edu
	}
	var fam models.Family
	if err := s.db.First(&fam, "user_id = ?", userID).Error; err == nil {
		full.Family = &fam
	}
	var prof models.Profession
	if err := s.db.First(&prof, "user_id = ?", userID).Error; err == nil {
		full.Profession = &prof
	}

	return full, nil
}

// UpdateUser applies a partial user-section payload and returns the updated
// record, which the console adopts as the authoritative state.
func (s *UserService) UpdateUser(userID uuid.UUID, req *dto.UpdateUserRequest) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		return nil, ErrUserNotFound
	}

	applyString := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	applyString(&user.Name, req.Name)
	applyString(&user.Email, req.Email)
	applyString(&user.Mobile, req.Mobile)
	applyString(&user.Gender, req.Gender)
	applyString(&user.DOB, req.DOB)
	applyString(&user.Height, req.Height)
	applyString(&user.Religion, req.Religion)
	applyString(&user.Caste, req.Caste)
	applyString(&user.MaritalStatus, req.MaritalStatus)
	applyString(&user.Mangalik, req.Mangalik)
	applyString(&user.Language, req.Language)

	if req.Hobbies != nil {
		user.Hobbies = datatypes.NewJSONSlice(*req.Hobbies)
	}
	if req.ProfilePictures != nil {
		if len(*req.ProfilePictures) > maxProfilePhotos {
			return nil, ErrTooManyPhotos
		}
		user.ProfilePictures = datatypes.NewJSONSlice(*req.ProfilePictures)
	}

	if req.BirthDetails != nil {
		user.BirthDetails = models.BirthDetails{
			BirthTime:  req.BirthDetails.BirthTime,
			BirthPlace: req.BirthDetails.BirthPlace,
		}
	}
	if req.PhysicalAttributes != nil {
		user.PhysicalAttributes = models.PhysicalAttributes{
			SkinTone:           req.PhysicalAttributes.SkinTone,
			BodyType:           req.PhysicalAttributes.BodyType,
			PhysicalDisability: req.PhysicalAttributes.PhysicalDisability,
			DisabilityReason:   req.PhysicalAttributes.DisabilityReason,
		}
	}
	if req.Lifestyle != nil {
		user.Lifestyle = models.Lifestyle{
			Smoke:     req.Lifestyle.Smoke,
			Drink:     req.Lifestyle.Drink,
			VegNonveg: req.Lifestyle.VegNonveg,
			NRIStatus: req.Lifestyle.NRIStatus,
		}
	}
	if req.Location != nil {
		user.Location = models.Location{
			Address: req.Location.Address,
			City:    req.Location.City,
			Pincode: req.Location.Pincode,
		}
	}

	if err := s.db.Save(&user).Error; err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return &user, nil
}

// UpdateAstrology upserts the astrology aggregate for a user.
func (s *UserService) UpdateAstrology(userID uuid.UUID, req *dto.UpdateAstrologyRequest) (*models.Astrology, error) {
	if err := s.ensureUser(userID); err != nil {
		return nil, err
	}

	var astro models.Astrology
	err := s.db.Where("user_id = ?", userID).First(&astro).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		astro = models.Astrology{ID: uuid.New(), UserID: userID}
	} else if err != nil {
		return nil, err
	}

	astro.RashiNakshatra = req.RashiNakshatra
	astro.Gotra = req.Gotra

	if err := s.db.Save(&astro).Error; err != nil {
		return nil, fmt.Errorf("failed to update astrology: %w", err)
	}
	return &astro, nil
}

func (s *UserService) UpdateEducation(userID uuid.UUID, req *dto.UpdateEducationRequest) (*models.Education, error) {
	if err := s.ensureUser(userID); err != nil {
		return nil, err
	}

	var edu models.Education
	err := s.db.Where("user_id = ?", userID).First(&edu).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		edu = models.Education{ID: uuid.New(), UserID: userID}
	} else if err != nil {
		return nil, err
	}

	edu.EducationLevel = req.EducationLevel
	edu.EducationField = req.EducationField
	if req.SchoolDetails != nil {
		edu.SchoolDetails = models.SchoolDetails{Name: req.SchoolDetails.Name, City: req.SchoolDetails.City}
	}
	if req.CollegeDetails != nil {
		edu.CollegeDetails = models.CollegeDetails{
			Name:        req.CollegeDetails.Name,
			City:        req.CollegeDetails.City,
			PassoutYear: req.CollegeDetails.PassoutYear,
		}
	}

	if err := s.db.Save(&edu).Error; err != nil {
		return nil, fmt.Errorf("failed to update education: %w", err)
	}
	return &edu, nil
}

func (s *UserService) UpdateFamily(userID uuid.UUID, req *dto.UpdateFamilyRequest) (*models.Family, error) {
	if err := s.ensureUser(userID); err != nil {
		return nil, err
	}

	var fam models.Family
	err := s.db.Where("user_id = ?", userID).First(&fam).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		fam = models.Family{ID: uuid.New(), UserID: userID}
	} else if err != nil {
		return nil, err
	}

	fam.FamilyValue = req.FamilyValue
	fam.FamilyType = req.FamilyType
	if req.Mother != nil {
		fam.Mother = models.Parent{Name: req.Mother.Name, Occupation: req.Mother.Occupation}
	}
	if req.Father != nil {
		fam.Father = models.Parent{Name: req.Father.Name, Occupation: req.Father.Occupation}
	}
	if req.Siblings != nil {
		fam.Siblings = models.Siblings{
			BrotherCount: req.Siblings.BrotherCount,
			SisterCount:  req.Siblings.SisterCount,
		}
	}

	if err := s.db.Save(&fam).Error; err != nil {
		return nil, fmt.Errorf("failed to update family: %w", err)
	}
	return &fam, nil
}

func (s *UserService) UpdateProfession(userID uuid.UUID, req *dto.UpdateProfessionRequest) (*models.Profession, error) {
	if err := s.ensureUser(userID); err != nil {
		return nil, err
	}

	var prof models.Profession
	err := s.db.Where("user_id = ?", userID).First(&prof).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		prof = models.Profession{ID: uuid.New(), UserID: userID}
	} else if err != nil {
		return nil, err
	}

	prof.Occupation = req.Occupation
	if req.WorkAddress != nil {
		prof.WorkAddress = models.WorkAddress{Address: req.WorkAddress.Address, City: req.WorkAddress.City}
	}

	if err := s.db.Save(&prof).Error; err != nil {
		return nil, fmt.Errorf("failed to update profession: %w", err)
	}
	return &prof, nil
}

// Approve activates a profile: status becomes Approved and the expiry is
// computed from the start date plus the purchased number of months.
func (s *UserService) Approve(userID uuid.UUID, startDate time.Time, expiryMonths int) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		return nil, ErrUserNotFound
	}

	if expiryMonths <= 0 {
		expiryMonths = 12
	}
	if startDate.IsZero() {
		startDate = time.Now()
	}
	expiry := startDate.AddDate(0, expiryMonths, 0)

	updates := map[string]any{
		"status":      "Approved",
		"expiry_date": expiry,
	}
	if err := s.db.Model(&user).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to approve user: %w", err)
	}

	user.Status = "Approved"
	user.ExpiryDate = &expiry
	slog.Info("user approved", "user_id", userID, "expiry", expiry)
	return &user, nil
}

// Block cancels a profile. The record survives for audit; only its status
// changes.
func (s *UserService) Block(userID uuid.UUID) error {
	res := s.db.Model(&models.User{}).Where("id = ?", userID).Update("status", "Canceled")
	if res.Error != nil {
		return fmt.Errorf("failed to block user: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

// Delete removes a user and every dependent row in one transaction.
func (s *UserService) Delete(userID uuid.UUID) error {
	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		return ErrUserNotFound
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		tx.Where("user_id = ?", userID).Delete(&models.Astrology{})
		tx.Where("user_id = ?", userID).Delete(&models.Education{})
		tx.Where("user_id = ?", userID).Delete(&models.Family{})
		tx.Where("user_id = ?", userID).Delete(&models.Profession{})
		tx.Where("user_id = ?", userID).Delete(&models.Payment{})
		return tx.Delete(&user).Error
	})
}

// Register creates a new profile from the public signup form. New profiles
// start Pending and wait for an operator to approve them.
func (s *UserService) Register(req *dto.RegisterRequest) (*models.User, error) {
	if req.Email == "" || len(req.Password) < 8 {
		return nil, errors.New("email required and password must be at least 8 characters")
	}
	if len(req.ProfilePictures) > maxProfilePhotos {
		return nil, ErrTooManyPhotos
	}
	if err := validateEnums(req); err != nil {
		return nil, err
	}

	var existing models.User
	if err := s.db.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		ID:            uuid.New(),
		Name:          req.Name,
		Email:         req.Email,
		Mobile:        req.Mobile,
		Password:      string(hash),
		Gender:        req.Gender,
		DOB:           req.DOB,
		Height:        req.Height,
		Religion:      req.Religion,
		Caste:         req.Caste,
		MaritalStatus: req.MaritalStatus,
		Mangalik:      req.Mangalik,
		Language:      req.Language,
		Status:        "Pending",
		RegisterDate:  time.Now(),
	}
	if req.Hobbies != nil {
		user.Hobbies = datatypes.NewJSONSlice(req.Hobbies)
	}
	if req.ProfilePictures != nil {
		user.ProfilePictures = datatypes.NewJSONSlice(req.ProfilePictures)
	}
	if req.BirthDetails != nil {
		user.BirthDetails = models.BirthDetails{
			BirthTime:  req.BirthDetails.BirthTime,
			BirthPlace: req.BirthDetails.BirthPlace,
		}
	}
	if req.PhysicalAttributes != nil {
		user.PhysicalAttributes = models.PhysicalAttributes{
			SkinTone:           req.PhysicalAttributes.SkinTone,
			BodyType:           req.PhysicalAttributes.BodyType,
			PhysicalDisability: req.PhysicalAttributes.PhysicalDisability,
			DisabilityReason:   req.PhysicalAttributes.DisabilityReason,
		}
	}
	if req.Lifestyle != nil {
		user.Lifestyle = models.Lifestyle{
			Smoke:     req.Lifestyle.Smoke,
			Drink:     req.Lifestyle.Drink,
			VegNonveg: req.Lifestyle.VegNonveg,
			NRIStatus: req.Lifestyle.NRIStatus,
		}
	}
	if req.Location != nil {
		user.Location = models.Location{
			Address: req.Location.Address,
			City:    req.Location.City,
			Pincode: req.Location.Pincode,
		}
	}

	if err := s.db.Create(&user).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return &user, nil
}

func (s *UserService) ensureUser(userID uuid.UUID) error {
	var count int64
	if err := s.db.Model(&models.User{}).Where("id = ?", userID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrUserNotFound
	}
	return nil
}

// validateEnums rejects signup values outside the declared vocabularies.
// Empty means unset and is always allowed; curation happens later in the
// console.
func validateEnums(req *dto.RegisterRequest) error {
	checks := []struct {
		field   string
		value   string
		options []profile.Option
	}{
		{"gender", req.Gender, profile.GenderOptions},
		{"religion", req.Religion, profile.ReligionOptions},
		{"caste", req.Caste, profile.CasteOptions},
		{"marital_status", req.MaritalStatus, profile.MaritalStatusOptions},
		{"mangalik", req.Mangalik, profile.MangalikOptions},
	}
	for _, c := range checks {
		if !profile.ValidOption(c.value, c.options) {
			return fmt.Errorf("invalid value %q for %s", c.value, c.field)
		}
	}
	return nil
}

// canonicalStatus maps a lowercase path segment onto the stored status form.
func canonicalStatus(s string) string {
	if s == "" {
		return ""
	}
	lower := strings.ToLower(s)
	return strings.ToUpper(lower[:1]) + lower[1:]
}
