package auth

import (
	"context"
	stderrors "errors"

	"github.com/google/uuid"
	"github.com/jrsteele09/go-credential-service/accounts"
	"github.com/pkg/errors"
)

// AccountService owns the account lifecycle: hashing at registration,
// verification at login. Uniqueness is delegated entirely to the store's
// constraints so that concurrent registrations cannot race a pre-insert
// existence check.
type AccountService struct {
	repo      accounts.Repo
	validator *Validator
	hashCost  int
	dummyHash string // compared against when the username is unknown, to equalize timing
}

// AccountServiceOption defines a function type to modify the AccountService instance.
type AccountServiceOption func(*AccountService)

// WithHashCost overrides the bcrypt cost factor.
func WithHashCost(cost int) AccountServiceOption {
	return func(as *AccountService) {
		as.hashCost = cost
	}
}

// NewAccountService initializes a new AccountService with required dependencies.
func NewAccountService(repo accounts.Repo, options ...AccountServiceOption) (*AccountService, error) {
	if repo == nil {
		return nil, errors.New("[NewAccountService] account repo is required")
	}

	accountService := &AccountService{
		repo:      repo,
		validator: NewValidator(),
		hashCost:  accounts.DefaultHashCost,
	}

	for _, opt := range options {
		opt(accountService)
	}

	if accountService.hashCost < accounts.MinHashCost || accountService.hashCost > accounts.MaxHashCost {
		return nil, errors.Errorf("[NewAccountService] hash cost %d out of range", accountService.hashCost)
	}

	dummyHash, err := accounts.HashPassword(uuid.New().String(), accountService.hashCost)
	if err != nil {
		return nil, errors.Wrap(err, "[NewAccountService] failed to derive dummy hash")
	}
	accountService.dummyHash = dummyHash

	return accountService, nil
}

// Register validates the submission, hashes the password, and persists a
// new account. A uniqueness violation from the store surfaces as
// *DuplicateAccountError; any other store failure as *PersistenceError.
func (as *AccountService) Register(ctx context.Context, submission Registration) (*AccountSummary, error) {
	if err := as.validator.ValidateRegistration(submission); err != nil {
		return nil, err
	}

	passwordHash, err := accounts.HashPassword(submission.Password, as.hashCost)
	if err != nil {
		return nil, errors.Wrap(err, "[AccountService.Register] HashPassword")
	}

	account, err := as.repo.Create(ctx, &accounts.Account{
		Username:     submission.Username,
		Email:        submission.Email,
		PasswordHash: passwordHash,
		FirstName:    submission.FirstName,
		LastName:     submission.LastName,
	})
	if err != nil {
		var dup *accounts.DuplicateError
		if stderrors.As(err, &dup) {
			return nil, &DuplicateAccountError{Field: dup.Field, Value: dup.Value}
		}
		return nil, &PersistenceError{Err: errors.Wrap(err, "[AccountService.Register] repo.Create")}
	}

	return &AccountSummary{ID: account.ID, Username: account.Username}, nil
}

// Authenticate validates the submission and verifies the password
// against the stored hash. Unknown username and wrong password both
// return ErrInvalidCredentials; a bcrypt compare runs in either case so
// the two are indistinguishable by response time.
func (as *AccountService) Authenticate(ctx context.Context, submission Login) (*AccountIdentity, error) {
	if err := as.validator.ValidateLogin(submission); err != nil {
		return nil, err
	}

	account, err := as.repo.GetByUsername(ctx, submission.Username)
	if err != nil {
		if stderrors.Is(err, accounts.ErrNotFound) {
			accounts.CheckPasswordHash(submission.Password, as.dummyHash)
			return nil, ErrInvalidCredentials
		}
		return nil, &PersistenceError{Err: errors.Wrap(err, "[AccountService.Authenticate] repo.GetByUsername")}
	}

	if !accounts.CheckPasswordHash(submission.Password, account.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	return &AccountIdentity{ID: account.ID, Username: account.Username}, nil
}
