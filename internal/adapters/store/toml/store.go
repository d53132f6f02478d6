package toml

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/bnema/bsky-accounts-cli/internal/domain"
	"github.com/bnema/bsky-accounts-cli/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	configName        = "config"
	configType        = "toml"
	accountsPathKey   = "accounts.path"
	accountsFileMode  = 0o600
	accountsDirMode   = 0o700
	accountsConfigDir = ".config/bsky-accounts"
	accountsFile      = "accounts.toml"
	tempFilePattern   = ".accounts-*.toml.tmp"
)

// Store is the durable account document. The collection lives in memory and
// every committed mutation is rewritten to disk atomically before observers
// are notified.
type Store struct {
	path string

	mu       *sync.RWMutex
	accounts []domain.Account
	active   domain.DID

	subMu   sync.Mutex
	subs    map[int]func(ports.StoreEvent)
	nextSub int
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.AccountStore = (*Store)(nil)

func NewStore(cfg *viper.Viper) (*Store, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	defaultPath := filepath.Join(homeDir, accountsConfigDir, accountsFile)

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(filepath.Join(homeDir, accountsConfigDir))
	cfg.SetDefault(accountsPathKey, defaultPath)

	err = cfg.ReadInConfig()
	if err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	accountsPath := cfg.GetString(accountsPathKey)
	if accountsPath == "" {
		return nil, errors.New("accounts path is empty")
	}
	accountsPath, err = normalizeAccountsPath(accountsPath)
	if err != nil {
		return nil, err
	}

	store := &Store{
		path: accountsPath,
		mu:   lockForPath(accountsPath),
		subs: map[int]func(ports.StoreEvent){},
	}

	store.mu.Lock()
	defer store.mu.Unlock()

	file, err := readDocument(accountsPath)
	if err != nil {
		return nil, err
	}
	store.adopt(file)

	return store, nil
}

func (s *Store) Accounts() []domain.Account {
	s.mu.RLock()
	defer s.mu.RUnlock()

	accounts := make([]domain.Account, len(s.accounts))
	copy(accounts, s.accounts)

	return accounts
}

func (s *Store) Get(did domain.DID) (domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, account := range s.accounts {
		if account.DID == did {
			return account, nil
		}
	}

	return domain.Account{}, domain.ErrAccountNotFound
}

func (s *Store) Upsert(account domain.Account) error {
	s.mu.Lock()

	accounts := s.snapshot()
	updated := false
	for i := range accounts {
		if accounts[i].DID == account.DID {
			accounts[i] = account
			updated = true
			break
		}
	}
	if !updated {
		accounts = append(accounts, account)
	}

	err := s.commit(accounts, s.active)
	s.mu.Unlock()
	if err != nil {
		return err
	}

	s.notify(ports.StoreEvent{Kind: ports.StoreEventUpsert, DID: account.DID})
	return nil
}

func (s *Store) Remove(did domain.DID) error {
	s.mu.Lock()

	accounts := s.snapshot()
	index := -1
	for i := range accounts {
		if accounts[i].DID == did {
			index = i
			break
		}
	}
	if index == -1 {
		s.mu.Unlock()
		return domain.ErrAccountNotFound
	}

	accounts = append(accounts[:index], accounts[index+1:]...)

	active := s.active
	if active == did {
		active = ""
	}

	err := s.commit(accounts, active)
	s.mu.Unlock()
	if err != nil {
		return err
	}

	s.notify(ports.StoreEvent{Kind: ports.StoreEventRemove, DID: did})
	return nil
}

func (s *Store) UpdateSession(did domain.DID, session domain.SessionData) error {
	s.mu.Lock()

	accounts := s.snapshot()
	index := -1
	for i := range accounts {
		if accounts[i].DID == did {
			index = i
			break
		}
	}
	if index == -1 {
		s.mu.Unlock()
		return domain.ErrAccountNotFound
	}

	accounts[index].Session = session

	err := s.commit(accounts, s.active)
	s.mu.Unlock()
	if err != nil {
		return err
	}

	s.notify(ports.StoreEvent{Kind: ports.StoreEventSession, DID: did})
	return nil
}

func (s *Store) Active() (domain.DID, error) {
	s.mu.Lock()

	if s.active != "" && s.contains(s.active) {
		active := s.active
		s.mu.Unlock()
		return active, nil
	}

	if len(s.accounts) == 0 {
		s.mu.Unlock()
		return "", nil
	}

	// No valid selection: adopt the first account and persist that choice so
	// subsequent reads agree across processes.
	adopted := s.accounts[0].DID
	err := s.commit(s.snapshot(), adopted)
	s.mu.Unlock()
	if err != nil {
		return "", err
	}

	s.notify(ports.StoreEvent{Kind: ports.StoreEventActive, DID: adopted})
	return adopted, nil
}

func (s *Store) SetActive(did domain.DID) error {
	s.mu.Lock()

	accounts := s.snapshot()
	if did != "" {
		index := -1
		for i := range accounts {
			if accounts[i].DID == did {
				index = i
				break
			}
		}
		if index > 0 {
			selected := accounts[index]
			accounts = append(accounts[:index], accounts[index+1:]...)
			accounts = append([]domain.Account{selected}, accounts...)
		}
	}

	err := s.commit(accounts, did)
	s.mu.Unlock()
	if err != nil {
		return err
	}

	s.notify(ports.StoreEvent{Kind: ports.StoreEventActive, DID: did})
	return nil
}

func (s *Store) Subscribe(fn func(ports.StoreEvent)) func() {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn

	return func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		delete(s.subs, id)
	}
}

// snapshot copies the collection so a failed commit never leaves the
// in-memory state diverged from disk. Caller holds the write lock.
func (s *Store) snapshot() []domain.Account {
	accounts := make([]domain.Account, len(s.accounts))
	copy(accounts, s.accounts)
	return accounts
}

func (s *Store) contains(did domain.DID) bool {
	for _, account := range s.accounts {
		if account.DID == did {
			return true
		}
	}
	return false
}

// commit writes the document to disk and, only on success, replaces the
// in-memory state. Caller holds the write lock.
func (s *Store) commit(accounts []domain.Account, active domain.DID) error {
	file := fileSchema{Version: currentSchemaVersion, Active: string(active)}
	for _, account := range accounts {
		file.Accounts = append(file.Accounts, toSchema(account))
	}

	if err := s.writeDocument(file); err != nil {
		return err
	}

	s.accounts = accounts
	s.active = active
	return nil
}

// adopt loads decoded document state into memory. Caller holds the write lock.
func (s *Store) adopt(file fileSchema) {
	accounts := make([]domain.Account, 0, len(file.Accounts))
	for _, entry := range file.Accounts {
		accounts = append(accounts, fromSchema(entry))
	}

	s.accounts = accounts
	s.active = domain.DID(file.Active)
}

// notify runs outside the state lock: subscribers are free to read back into
// the store from their callback.
func (s *Store) notify(event ports.StoreEvent) {
	s.subMu.Lock()
	ids := make([]int, 0, len(s.subs))
	for id := range s.subs {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	fns := make([]func(ports.StoreEvent), 0, len(ids))
	for _, id := range ids {
		fns = append(fns, s.subs[id])
	}
	s.subMu.Unlock()

	for _, fn := range fns {
		fn(event)
	}
}

func readDocument(path string) (fileSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return migrate(0, fileSchema{}), nil
		}
		return fileSchema{}, fmt.Errorf("read accounts file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, fmt.Errorf("decode accounts file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return fileSchema{}, err
	}

	return migrate(file.Version, file), nil
}

func (s *Store) writeDocument(file fileSchema) error {
	if err := os.MkdirAll(filepath.Dir(s.path), accountsDirMode); err != nil {
		return fmt.Errorf("create accounts directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode accounts file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(s.path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp accounts file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp accounts file: %w", err)
	}

	if err := tempFile.Chmod(accountsFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp accounts file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp accounts file: %w", err)
	}

	if err := os.Rename(tempName, s.path); err != nil {
		return fmt.Errorf("replace accounts file: %w", err)
	}

	cleanup = false

	if err := os.Chmod(s.path, accountsFileMode); err != nil {
		return fmt.Errorf("chmod accounts file: %w", err)
	}

	return nil
}

func normalizeAccountsPath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve accounts path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}
