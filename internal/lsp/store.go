package lsp

import "sync"

// documentStore tracks the current text of documents the client has open.
// The protocol delivers full or incremental edits per URI; completion
// requests read whatever text was last synced.
type documentStore struct {
	mu   sync.RWMutex
	docs map[string]string
}

func newDocumentStore() *documentStore {
	return &documentStore{docs: make(map[string]string)}
}

// Get retrieves the text of an open document.
func (s *documentStore) Get(uri string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	text, found := s.docs[uri]
	return text, found
}

// Set stores the text of a document, replacing any previous version.
func (s *documentStore) Set(uri, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.docs[uri] = text
}

// Delete removes a document from the store.
func (s *documentStore) Delete(uri string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.docs, uri)
}
