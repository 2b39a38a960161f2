package auth

// MockStore is an in-memory store for testing.
type MockStore struct {
	secrets map[string]string
}

func NewMockStore() *MockStore {
	return &MockStore{secrets: make(map[string]string)}
}

func (m *MockStore) SetSecret(name string, value string) error {
	m.secrets[NormalizeEntry(name)] = value
	return nil
}

func (m *MockStore) GetSecret(name string) (string, error) {
	value, ok := m.secrets[NormalizeEntry(name)]
	if !ok {
		return "", ErrSecretNotFound
	}
	return value, nil
}

func (m *MockStore) DeleteSecret(name string) error {
	key := NormalizeEntry(name)
	if _, ok := m.secrets[key]; !ok {
		return ErrSecretNotFound
	}
	delete(m.secrets, key)
	return nil
}
