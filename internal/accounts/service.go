package accounts

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/cleared-dev/aoiro/internal/model"
)

var (
	// ErrUnknownAccount is returned when a code is not in the chart.
	ErrUnknownAccount = errors.New("unknown account")
	// ErrSystemAccount is returned when a seed account would be renamed or deleted.
	ErrSystemAccount = errors.New("system account cannot be modified")
)

// chartPath is relative to the books root.
const chartPath = "accounts/chart-of-accounts.csv"

// Service provides in-memory lookup and editing over the chart of accounts.
type Service struct {
	accounts []model.Account
	byCode   map[string]int
}

// NewService creates a Service from a slice of accounts.
func NewService(accounts []model.Account) *Service {
	s := &Service{accounts: append([]model.Account(nil), accounts...)}
	s.reindex()
	return s
}

func (s *Service) reindex() {
	sort.SliceStable(s.accounts, func(i, j int) bool { return s.accounts[i].Code < s.accounts[j].Code })
	s.byCode = make(map[string]int, len(s.accounts))
	for i, a := range s.accounts {
		s.byCode[a.Code] = i
	}
}

// Load reads accounts/chart-of-accounts.csv from a books root.
func Load(root string) (*Service, error) {
	path := filepath.Join(root, chartPath)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening chart of accounts: %w", err)
	}
	defer f.Close()

	accts, err := ReadAccounts(f)
	if err != nil {
		return nil, fmt.Errorf("reading chart of accounts: %w", err)
	}
	return NewService(accts), nil
}

// All returns all accounts ordered by code.
func (s *Service) All() []model.Account {
	return append([]model.Account(nil), s.accounts...)
}

// Get returns an account by code.
func (s *Service) Get(code string) (model.Account, bool) {
	i, ok := s.byCode[code]
	if !ok {
		return model.Account{}, false
	}
	return s.accounts[i], true
}

// Exists reports whether a code is in the chart.
func (s *Service) Exists(code string) bool {
	_, ok := s.byCode[code]
	return ok
}

// ByType returns all accounts of the given type.
func (s *Service) ByType(accountType model.AccountType) []model.Account {
	var result []model.Account
	for _, a := range s.accounts {
		if a.Type == accountType {
			result = append(result, a)
		}
	}
	return result
}

// Add creates a user account with the next free code for its type.
func (s *Service) Add(name string, t model.AccountType, defaultTax model.TaxCategory) (model.Account, error) {
	if name == "" {
		return model.Account{}, errors.New("account name is required")
	}
	if !defaultTax.Valid() {
		return model.Account{}, fmt.Errorf("unknown tax category %q", defaultTax)
	}
	code, err := NextCode(t, s.accounts)
	if err != nil {
		return model.Account{}, err
	}
	acct := model.Account{Code: code, Name: name, Type: t, DefaultTaxCategory: defaultTax}
	s.accounts = append(s.accounts, acct)
	s.reindex()
	return acct, nil
}

// Rename changes the name of a user account. Journal lines reference the
// code, so history is unaffected.
func (s *Service) Rename(code, name string) error {
	i, err := s.userIndex(code)
	if err != nil {
		return err
	}
	s.accounts[i].Name = name
	return nil
}

// Delete removes a user account. Lines already posted to it keep the code and
// are skipped by aggregate reports from then on.
func (s *Service) Delete(code string) error {
	i, err := s.userIndex(code)
	if err != nil {
		return err
	}
	s.accounts = append(s.accounts[:i], s.accounts[i+1:]...)
	s.reindex()
	return nil
}

func (s *Service) userIndex(code string) (int, error) {
	i, ok := s.byCode[code]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownAccount, code)
	}
	if model.IsSystemCode(code) {
		return 0, fmt.Errorf("%w: %s", ErrSystemAccount, code)
	}
	return i, nil
}

// Save writes the chart of accounts to accounts/chart-of-accounts.csv.
func (s *Service) Save(root string) error {
	path := filepath.Join(root, chartPath)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating accounts dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating chart of accounts file: %w", err)
	}
	defer f.Close()

	if err := WriteAccounts(f, s.accounts); err != nil {
		return fmt.Errorf("writing chart of accounts: %w", err)
	}
	return nil
}
