// Package store provides file-based persistence for the transaction and rule
// collections. Both are stored as whole JSON arrays and read-modify-written
// under a single-writer discipline; the computation packages never touch the
// store directly.
package store

import (
	"encoding/json"
	"os"
	"path/filepath"

	"finsight/internal/logging"
	"finsight/internal/models"
	"finsight/internal/parsererror"
)

const (
	transactionsFile = "transactions.json"
	rulesFile        = "rules.json"
)

var log = logging.GetLogger()

// SetLogger allows setting a custom logger.
func SetLogger(logger logging.Logger) {
	if logger != nil {
		log = logger
	}
}

// Store manages the data directory holding the persisted collections.
type Store struct {
	dataDir string
}

// New creates a store rooted at the given data directory.
func New(dataDir string) *Store {
	return &Store{dataDir: dataDir}
}

func (s *Store) transactionsPath() string {
	return filepath.Join(s.dataDir, transactionsFile)
}

func (s *Store) rulesPath() string {
	return filepath.Join(s.dataDir, rulesFile)
}

func (s *Store) ensureDataDir() error {
	if err := os.MkdirAll(s.dataDir, 0750); err != nil {
		return &parsererror.StoreError{Path: s.dataDir, Op: "mkdir", Err: err}
	}
	return nil
}

// readJSONArray reads a JSON array file into out. A missing, empty or
// corrupted file leaves out untouched and is not an error: persisted data
// should never make the application unusable.
func readJSONArray(path string, out interface{}) {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.WithError(err).WithField(logging.FieldFile, path).Warn("Failed to read data file")
		}
		return
	}
	if len(data) == 0 {
		return
	}
	if err := json.Unmarshal(data, out); err != nil {
		log.WithError(err).WithField(logging.FieldFile, path).Warn("Ignoring corrupted data file")
	}
}

func (s *Store) writeJSONArray(path string, in interface{}) error {
	if err := s.ensureDataDir(); err != nil {
		return err
	}
	data, err := json.MarshalIndent(in, "", "  ")
	if err != nil {
		return &parsererror.StoreError{Path: path, Op: "marshal", Err: err}
	}
	if err := os.WriteFile(path, data, 0640); err != nil {
		return &parsererror.StoreError{Path: path, Op: "write", Err: err}
	}
	return nil
}

// LoadTransactions returns the persisted transaction collection, empty when
// nothing has been saved yet.
func (s *Store) LoadTransactions() []models.Transaction {
	transactions := []models.Transaction{}
	readJSONArray(s.transactionsPath(), &transactions)
	return transactions
}

// SaveTransactions replaces the persisted transaction collection.
func (s *Store) SaveTransactions(transactions []models.Transaction) error {
	return s.writeJSONArray(s.transactionsPath(), transactions)
}

// AppendTransactions adds new transactions, skipping any whose
// (txnDate, description, amount) composite matches an existing record.
// Returns the total collection size after the append.
func (s *Store) AppendTransactions(newTransactions []models.Transaction) (int, error) {
	existing := s.LoadTransactions()

	seen := make(map[string]bool, len(existing))
	for _, t := range existing {
		seen[t.DedupKey()] = true
	}

	appended := 0
	for _, t := range newTransactions {
		key := t.DedupKey()
		if seen[key] {
			continue
		}
		seen[key] = true
		existing = append(existing, t)
		appended++
	}

	if appended == 0 {
		return len(existing), nil
	}

	if err := s.SaveTransactions(existing); err != nil {
		return 0, err
	}
	log.WithField(logging.FieldCount, appended).Info("Appended transactions")
	return len(existing), nil
}

// ClearTransactions removes every persisted transaction.
func (s *Store) ClearTransactions() error {
	return s.writeJSONArray(s.transactionsPath(), []models.Transaction{})
}

// LoadRules returns the persisted rule collection, empty when nothing has
// been saved yet.
func (s *Store) LoadRules() []models.CategoryRule {
	rules := []models.CategoryRule{}
	readJSONArray(s.rulesPath(), &rules)
	return rules
}

// SaveRules replaces the persisted rule collection.
func (s *Store) SaveRules(rules []models.CategoryRule) error {
	return s.writeJSONArray(s.rulesPath(), rules)
}
