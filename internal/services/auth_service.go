package services

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/startupcomply/comply/internal/models"
)

type AuthUserStore interface {
	FindByEmail(email string) (models.User, bool)
	Add(user models.User)
	Update(user models.User)
	CurrentUser() *models.User
	ClearCurrentUser()
}

type AuthCompanyStore interface {
	Get() *models.Company
	Update(company models.Company)
}

type AuthCredentialStore interface {
	SetPassword(userID string, password string) error
	VerifyPassword(userID string, password string) bool
}

type ActivityRecorder interface {
	Add(activity models.Activity)
}

// SignupInput carries the profile fields a new account may supply. Missing
// optional fields get the stock defaults.
type SignupInput struct {
	Email      string
	FirstName  string
	LastName   string
	JobTitle   string
	Department string
	Location   string
	Timezone   string
	Phone      string
}

type UserPatch struct {
	Email      *string `json:"email"`
	FirstName  *string `json:"firstName"`
	LastName   *string `json:"lastName"`
	JobTitle   *string `json:"jobTitle"`
	Department *string `json:"department"`
	Location   *string `json:"location"`
	Timezone   *string `json:"timezone"`
	Phone      *string `json:"phone"`
}

type CompanyPatch struct {
	Name              *string `json:"name"`
	Industry          *string `json:"industry"`
	EmployeeCount     *string `json:"employeeCount"`
	Website           *string `json:"website"`
	Address           *string `json:"address"`
	City              *string `json:"city"`
	State             *string `json:"state"`
	ZipCode           *string `json:"zipCode"`
	Country           *string `json:"country"`
	PrimaryContact    *string `json:"primaryContact"`
	ComplianceOfficer *string `json:"complianceOfficer"`
}

// AuthService is the session controller: it owns the in-memory session,
// seeds it once from the store's currentUser/company keys, and moves it
// through login/signup/logout transitions. Authentication failures are
// boolean outcomes; unknown email and wrong password are indistinguishable
// to callers.
type AuthService struct {
	users       AuthUserStore
	companies   AuthCompanyStore
	credentials AuthCredentialStore
	activities  ActivityRecorder

	mu      sync.Mutex
	session Session
}

func NewAuthService(users AuthUserStore, companies AuthCompanyStore, credentials AuthCredentialStore, activities ActivityRecorder) *AuthService {
	service := &AuthService{
		users:       users,
		companies:   companies,
		credentials: credentials,
		activities:  activities,
	}

	if savedUser := users.CurrentUser(); savedUser != nil {
		service.session = Session{
			Authenticated: true,
			User:          savedUser,
			Company:       companies.Get(),
		}
	}
	return service
}

// Session returns a copy of the current session state.
func (service *AuthService) Session() Session {
	service.mu.Lock()
	defer service.mu.Unlock()
	return copySession(service.session)
}

// CurrentDisplayName is the denormalized name written into activities and
// report metadata, with the source's fallback for anonymous contexts.
func (service *AuthService) CurrentDisplayName() string {
	session := service.Session()
	if name := session.DisplayName(); name != "" {
		return name
	}
	return "Current User"
}

func (service *AuthService) Login(email string, password string) bool {
	user, found := service.users.FindByEmail(email)
	if !found {
		return false
	}
	if !service.credentials.VerifyPassword(user.ID, password) {
		return false
	}

	user.LastLogin = time.Now()
	service.users.Update(user)

	service.recordSystemActivity("User logged in", user.DisplayName())
	service.publish(Session{
		Authenticated: true,
		User:          &user,
		Company:       service.companies.Get(),
	})
	return true
}

func (service *AuthService) Signup(input SignupInput, password string) bool {
	if _, exists := service.users.FindByEmail(input.Email); exists {
		return false
	}

	now := time.Now()
	user := models.User{
		ID:         uuid.NewString(),
		Email:      input.Email,
		FirstName:  input.FirstName,
		LastName:   input.LastName,
		JobTitle:   defaultString(input.JobTitle, "Compliance Officer"),
		Department: defaultString(input.Department, "Legal"),
		Location:   input.Location,
		Timezone:   defaultString(input.Timezone, "America/Los_Angeles"),
		Phone:      input.Phone,
		CreatedAt:  now,
		LastLogin:  now,
	}

	if err := service.credentials.SetPassword(user.ID, password); err != nil {
		return false
	}
	service.users.Add(user)

	// First signup creates the singleton company and becomes its owner.
	company := service.companies.Get()
	if company == nil {
		company = &models.Company{
			ID:                uuid.NewString(),
			Name:              "My Company",
			Industry:          "Technology",
			EmployeeCount:     "1-10",
			Country:           "United States",
			PrimaryContact:    user.DisplayName(),
			ComplianceOfficer: user.DisplayName(),
		}
		service.companies.Update(*company)
	}

	service.recordSystemActivity("New user registered", user.DisplayName())
	service.publish(Session{
		Authenticated: true,
		User:          &user,
		Company:       company,
	})
	return true
}

// Logout clears session state. User and company records stay persisted for
// the next login.
func (service *AuthService) Logout() {
	session := service.Session()
	if session.User != nil {
		service.recordSystemActivity("User logged out", session.User.DisplayName())
	}

	service.users.ClearCurrentUser()
	service.publish(Session{})
}

// UpdateUser shallow-merges the patch over the current user record. Without
// an authenticated user it is a no-op.
func (service *AuthService) UpdateUser(patch UserPatch) {
	session := service.Session()
	if session.User == nil {
		return
	}

	updated := *session.User
	applyString(&updated.Email, patch.Email)
	applyString(&updated.FirstName, patch.FirstName)
	applyString(&updated.LastName, patch.LastName)
	applyString(&updated.JobTitle, patch.JobTitle)
	applyString(&updated.Department, patch.Department)
	applyString(&updated.Location, patch.Location)
	applyString(&updated.Timezone, patch.Timezone)
	applyString(&updated.Phone, patch.Phone)

	service.users.Update(updated)
	session.User = &updated
	service.publish(session)
}

// UpdateCompany shallow-merges the patch over the company record, creating
// one when none exists yet.
func (service *AuthService) UpdateCompany(patch CompanyPatch) {
	session := service.Session()

	var updated models.Company
	if session.Company != nil {
		updated = *session.Company
	} else {
		updated = models.Company{ID: uuid.NewString()}
	}
	applyString(&updated.Name, patch.Name)
	applyString(&updated.Industry, patch.Industry)
	applyString(&updated.EmployeeCount, patch.EmployeeCount)
	applyString(&updated.Website, patch.Website)
	applyString(&updated.Address, patch.Address)
	applyString(&updated.City, patch.City)
	applyString(&updated.State, patch.State)
	applyString(&updated.ZipCode, patch.ZipCode)
	applyString(&updated.Country, patch.Country)
	applyString(&updated.PrimaryContact, patch.PrimaryContact)
	applyString(&updated.ComplianceOfficer, patch.ComplianceOfficer)

	service.companies.Update(updated)
	session.Company = &updated
	service.publish(session)
}

func (service *AuthService) publish(session Session) {
	service.mu.Lock()
	defer service.mu.Unlock()
	service.session = session
}

func (service *AuthService) recordSystemActivity(action string, userName string) {
	service.activities.Add(models.Activity{
		ID:        uuid.NewString(),
		Action:    action,
		User:      userName,
		Timestamp: time.Now(),
		Type:      models.ActivityTypeSystem,
	})
}

func copySession(session Session) Session {
	result := Session{Authenticated: session.Authenticated}
	if session.User != nil {
		user := *session.User
		result.User = &user
	}
	if session.Company != nil {
		company := *session.Company
		result.Company = &company
	}
	return result
}

func defaultString(value string, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func applyString(target *string, value *string) {
	if value != nil {
		*target = *value
	}
}
