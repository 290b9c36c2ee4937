package service

import (
	"context"
	"errors"
	"sync"

	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	accounterrors "tripwise/internal/accounts/errors"
	"tripwise/internal/accounts/repository"
	"tripwise/internal/accounts/validator"
	"tripwise/internal/auth"
	"tripwise/pkg/config"
	apperrors "tripwise/pkg/errors"
	"tripwise/pkg/model"
	"tripwise/pkg/sanitizer"
)

// loginFailedMessage is shared by the unknown-email and wrong-password
// paths so responses do not reveal which accounts exist.
const loginFailedMessage = "Invalid email or password"

const dashboardRecentBookings = 5

// BookingStore is the slice of the bookings domain the accounts service
// needs: deletion gating, cascade and the dashboard summary.
type BookingStore interface {
	CountActiveByAccount(ctx context.Context, accountID string) (int64, error)
	DeleteByAccount(ctx context.Context, accountID string) error
	StatsByAccount(ctx context.Context, accountID string) (*model.BookingStats, error)
	FindRecentByAccount(ctx context.Context, accountID string, limit int) ([]*model.Booking, error)
}

type AccountService interface {
	Register(ctx context.Context, in *model.RegisterInput) (*model.AuthResult, error)
	Login(ctx context.Context, in *model.LoginInput) (*model.AuthResult, error)
	Get(ctx context.Context, id string) (*model.Account, error)
	UpdateProfile(ctx context.Context, id string, update *model.ProfileUpdate) (*model.Account, error)
	UpdatePreferences(ctx context.Context, id string, update *model.PreferencesUpdate) (*model.Account, error)
	UpdatePassport(ctx context.Context, id string, in *model.PassportInput) (*model.Account, error)
	Delete(ctx context.Context, id string, password string) error
	Dashboard(ctx context.Context, id string) (*model.Dashboard, error)
	GetAll(ctx context.Context, limit int, offset int64) ([]*model.Account, int64, error)
}

type accountService struct {
	repo      repository.AccountRepository
	bookings  BookingStore
	validator *validator.AccountValidator
	tokens    *auth.TokenManager
	cfg       *config.Config
}

func NewAccountService(
	repo repository.AccountRepository,
	bookings BookingStore,
	validator *validator.AccountValidator,
	tokens *auth.TokenManager,
	cfg *config.Config,
) AccountService {
	return &accountService{
		repo:      repo,
		bookings:  bookings,
		validator: validator,
		tokens:    tokens,
		cfg:       cfg,
	}
}

func (s *accountService) Register(ctx context.Context, in *model.RegisterInput) (*model.AuthResult, error) {
	s.sanitizeRegistration(in)

	if err := s.validator.ValidateRegistration(in); err != nil {
		s.cfg.Log.Warn("Registration validation failed", "error", err)
		return nil, validationError(err, "Registration validation failed")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.cfg.BcryptCost)
	if err != nil {
		return nil, apperrors.Internal("Failed to hash password", err)
	}

	account := &model.Account{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		PasswordHash: string(hash),
		Phone:        in.Phone,
		BirthDate:    in.BirthDate,
		Preferences:  model.DefaultPreferences(),
		Role:         model.RoleUser,
	}

	// The unique email index is the arbiter: concurrent registrations with
	// the same address race to a single winner.
	if err := s.repo.Create(ctx, account); err != nil {
		if errors.Is(err, accounterrors.ErrDuplicateEmail) {
			return nil, apperrors.Conflict("Email is already registered")
		}
		s.cfg.Log.Error("Failed to create account", "error", err)
		return nil, apperrors.Internal("Failed to create account", err)
	}

	token, err := s.tokens.Issue(account)
	if err != nil {
		s.cfg.Log.Error("Failed to issue token", "account_id", account.ID, "error", err)
		return nil, apperrors.Internal("Failed to issue token", err)
	}

	s.cfg.Log.Info("Account registered", "account_id", account.ID)
	return &model.AuthResult{Account: account.Sanitized(), Token: token}, nil
}

func (s *accountService) Login(ctx context.Context, in *model.LoginInput) (*model.AuthResult, error) {
	if err := s.validator.ValidateLogin(in); err != nil {
		return nil, validationError(err, "Login validation failed")
	}

	account, err := s.repo.FindByEmail(ctx, sanitizer.NormalizeEmail(in.Email))
	if err != nil {
		if errors.Is(err, accounterrors.ErrNotFound) {
			return nil, apperrors.Unauthorized(loginFailedMessage)
		}
		s.cfg.Log.Error("Failed to look up account for login", "error", err)
		return nil, apperrors.Internal("Failed to log in", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(in.Password)); err != nil {
		return nil, apperrors.Unauthorized(loginFailedMessage)
	}

	token, err := s.tokens.Issue(account)
	if err != nil {
		s.cfg.Log.Error("Failed to issue token", "account_id", account.ID, "error", err)
		return nil, apperrors.Internal("Failed to issue token", err)
	}

	s.cfg.Log.Info("Account logged in", "account_id", account.ID)
	return &model.AuthResult{Account: account.Sanitized(), Token: token}, nil
}

func (s *accountService) Get(ctx context.Context, id string) (*model.Account, error) {
	account, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return account.Sanitized(), nil
}

func (s *accountService) UpdateProfile(ctx context.Context, id string, update *model.ProfileUpdate) (*model.Account, error) {
	s.sanitizeProfileUpdate(update)

	if err := s.validator.ValidateProfileUpdate(update); err != nil {
		return nil, validationError(err, "Profile validation failed")
	}

	account, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.FirstName != "" {
		account.FirstName = update.FirstName
	}
	if update.LastName != "" {
		account.LastName = update.LastName
	}
	if update.Phone != nil {
		phone := sanitizer.NormalizePhone(*update.Phone)
		if *update.Phone != "" && phone == "" {
			return nil, apperrors.Validation("Profile validation failed", map[string]any{
				"Phone": "phone must be in E.164 format (e.g., +14155552671)",
			})
		}
		account.Phone = phone
	}
	if update.BirthDate != nil {
		account.BirthDate = update.BirthDate
	}

	if err := s.save(ctx, id, account); err != nil {
		return nil, err
	}

	s.cfg.Log.Info("Profile updated", "account_id", id)
	return account.Sanitized(), nil
}

func (s *accountService) UpdatePreferences(ctx context.Context, id string, update *model.PreferencesUpdate) (*model.Account, error) {
	if err := s.validator.ValidatePreferencesUpdate(update); err != nil {
		return nil, validationError(err, "Preferences validation failed")
	}

	account, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.Currency != "" {
		account.Preferences.Currency = update.Currency
	}
	if update.Language != "" {
		account.Preferences.Language = update.Language
	}
	if update.Notifications != nil {
		account.Preferences.Notifications = *update.Notifications
	}

	if err := s.save(ctx, id, account); err != nil {
		return nil, err
	}

	s.cfg.Log.Info("Preferences updated", "account_id", id)
	return account.Sanitized(), nil
}

func (s *accountService) UpdatePassport(ctx context.Context, id string, in *model.PassportInput) (*model.Account, error) {
	in.Number = sanitizer.NormalizePassportNumber(in.Number)

	if err := s.validator.ValidatePassport(in); err != nil {
		return nil, validationError(err, "Passport validation failed")
	}

	account, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	account.Passport = &model.Passport{
		Number:         in.Number,
		ExpiryDate:     in.ExpiryDate,
		IssuingCountry: in.IssuingCountry,
	}

	if err := s.save(ctx, id, account); err != nil {
		return nil, err
	}

	s.cfg.Log.Info("Passport updated", "account_id", id)
	return account.Sanitized(), nil
}

// Delete closes the account. The password must be re-entered, and closure
// is refused while any owned booking is still pending or confirmed.
// Deletion cascades to the remaining (terminal) bookings in one
// transaction.
func (s *accountService) Delete(ctx context.Context, id string, password string) error {
	if password == "" {
		return apperrors.Validation("Password confirmation is required", map[string]any{
			"Password": "password is required",
		})
	}

	account, err := s.find(ctx, id)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return apperrors.Unauthorized("Password is incorrect")
	}

	active, err := s.bookings.CountActiveByAccount(ctx, id)
	if err != nil {
		s.cfg.Log.Error("Failed to count active bookings", "account_id", id, "error", err)
		return apperrors.Internal("Failed to check bookings", err)
	}
	if active > 0 {
		return apperrors.Conflict("Account has active bookings; cancel or complete them first")
	}

	err = s.repo.ExecuteTransaction(ctx, func(sessCtx mongo.SessionContext) error {
		if err := s.bookings.DeleteByAccount(sessCtx, id); err != nil {
			return apperrors.Internal("Failed to delete bookings", err)
		}
		if err := s.repo.Delete(sessCtx, id); err != nil {
			if errors.Is(err, accounterrors.ErrNotFound) {
				return apperrors.NotFoundWithID("Account", id)
			}
			return apperrors.Internal("Failed to delete account", err)
		}
		return nil
	})
	if err != nil {
		s.cfg.Log.Error("Failed to delete account", "account_id", id, "error", err)
		return err
	}

	s.cfg.Log.Info("Account deleted", "account_id", id)
	return nil
}

func (s *accountService) Dashboard(ctx context.Context, id string) (*model.Dashboard, error) {
	account, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	stats, err := s.bookings.StatsByAccount(ctx, id)
	if err != nil {
		s.cfg.Log.Error("Failed to load booking stats", "account_id", id, "error", err)
		return nil, apperrors.Internal("Failed to load dashboard", err)
	}

	recent, err := s.bookings.FindRecentByAccount(ctx, id, dashboardRecentBookings)
	if err != nil {
		s.cfg.Log.Error("Failed to load recent bookings", "account_id", id, "error", err)
		return nil, apperrors.Internal("Failed to load dashboard", err)
	}

	return &model.Dashboard{
		Account:        account.Sanitized(),
		Stats:          stats,
		RecentBookings: recent,
	}, nil
}

func (s *accountService) GetAll(ctx context.Context, limit int, offset int64) ([]*model.Account, int64, error) {
	var count int64
	var accounts []*model.Account
	var errCount, errFind error
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		count, errCount = s.repo.Count(ctx)
		if errCount != nil {
			s.cfg.Log.Error("Failed to count accounts", "error", errCount)
			errCount = apperrors.Internal("Failed to count accounts", errCount)
		}
	}()

	go func() {
		defer wg.Done()
		accounts, errFind = s.repo.FindAll(ctx, limit, offset)
		if errFind != nil {
			s.cfg.Log.Error("Failed to list accounts", "error", errFind)
			errFind = apperrors.Internal("Failed to retrieve accounts", errFind)
		}
	}()

	wg.Wait()
	if errCount != nil {
		return nil, 0, errCount
	}
	if errFind != nil {
		return nil, 0, errFind
	}

	sanitized := make([]*model.Account, len(accounts))
	for i, a := range accounts {
		sanitized[i] = a.Sanitized()
	}
	return sanitized, count, nil
}

// --- Helpers ---

func (s *accountService) find(ctx context.Context, id string) (*model.Account, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Account ID cannot be empty")
	}

	account, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, accounterrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Account", id)
		}
		if errors.Is(err, accounterrors.ErrInvalidID) {
			return nil, apperrors.InvalidInput("Invalid account ID format")
		}
		return nil, apperrors.Internal("Failed to retrieve account", err)
	}

	return account, nil
}

func (s *accountService) save(ctx context.Context, id string, account *model.Account) error {
	if err := s.repo.Update(ctx, id, account); err != nil {
		if errors.Is(err, accounterrors.ErrNotFound) {
			return apperrors.NotFoundWithID("Account", id)
		}
		s.cfg.Log.Error("Failed to update account", "account_id", id, "error", err)
		return apperrors.Internal("Failed to update account", err)
	}
	return nil
}

func (s *accountService) sanitizeRegistration(in *model.RegisterInput) {
	in.FirstName = sanitizer.NormalizeName(in.FirstName)
	in.LastName = sanitizer.NormalizeName(in.LastName)
	in.Email = sanitizer.NormalizeEmail(in.Email)
	if in.Phone != "" {
		in.Phone = sanitizer.NormalizePhone(in.Phone)
	}
}

func (s *accountService) sanitizeProfileUpdate(update *model.ProfileUpdate) {
	update.FirstName = sanitizer.NormalizeName(update.FirstName)
	update.LastName = sanitizer.NormalizeName(update.LastName)
}

func validationError(err error, message string) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return apperrors.Validation(message, verrs.Details())
	}
	return apperrors.Validation(message, map[string]any{"error": err.Error()})
}
