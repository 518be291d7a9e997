package document

import (
	"fmt"
	"sync"

	"github.com/NikitaCOEUR/routeconf/internal/derrors"
)

// Document is an open editor document
type Document struct {
	URI        string
	LanguageID string
	Version    int
	Text       string
}

// Change is a content change sent by the editor.
// A nil Range replaces the whole document.
type Change struct {
	Range *Range
	Text  string
}

// Apply applies a change to the document text
func (d *Document) Apply(change Change) {
	if change.Range == nil {
		d.Text = change.Text
		return
	}

	start := Offset(d.Text, change.Range.Start)
	end := Offset(d.Text, change.Range.End)
	if end < start {
		start, end = end, start
	}
	d.Text = d.Text[:start] + change.Text + d.Text[end:]
}

// LinePrefix returns the text preceding the position on its line
func (d *Document) LinePrefix(pos Position) (string, bool) {
	return LinePrefix(d.Text, pos.Line, pos.Character)
}

// Store holds the documents currently open in the editor
type Store struct {
	mu   sync.RWMutex
	docs map[string]*Document
}

// NewStore creates an empty document store
func NewStore() *Store {
	return &Store{docs: make(map[string]*Document)}
}

// Open registers a document, replacing any previous version
func (s *Store) Open(uri, languageID string, version int, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.docs[uri] = &Document{
		URI:        uri,
		LanguageID: languageID,
		Version:    version,
		Text:       text,
	}
}

// Change applies content changes in order and records the new version
func (s *Store) Change(uri string, version int, changes []Change) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.docs[uri]
	if !ok {
		return derrors.NewDocumentError(uri, "document is not open", nil)
	}

	for _, change := range changes {
		doc.Apply(change)
	}
	doc.Version = version
	return nil
}

// Close forgets a document
func (s *Store) Close(uri string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.docs, uri)
}

// Get returns a snapshot of a document
func (s *Store) Get(uri string) (Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.docs[uri]
	if !ok {
		return Document{}, derrors.NewDocumentError(uri, fmt.Sprintf("unknown document %s", uri), nil)
	}
	return *doc, nil
}

// Len returns the number of open documents
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.docs)
}
