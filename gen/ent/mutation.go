// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/candlekeep/candlekeep/gen/ent/document"
	"github.com/candlekeep/candlekeep/gen/ent/documentimage"
	"github.com/candlekeep/candlekeep/gen/ent/predicate"
	"github.com/candlekeep/candlekeep/internal/entity"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeDocument      = "Document"
	TypeDocumentImage = "DocumentImage"
)

// DocumentMutation represents an operation that mutates the Document nodes in the graph.
type DocumentMutation struct {
	config
	op                      Op
	typ                     string
	id                      *int
	title                   *string
	author                  *string
	source_type             *string
	content_hash            *string
	markdown_path           *string
	original_path           *string
	page_count              *int
	addpage_count           *int
	word_count              *int
	addword_count           *int
	chapter_count           *int
	addchapter_count        *int
	table_of_contents       *[]entity.TOCEntry
	appendtable_of_contents []entity.TOCEntry
	subject                 *string
	keywords                *string
	category                *string
	tags                    *[]string
	appendtags              []string
	pdf_creation_date       *time.Time
	pdf_mod_date            *time.Time
	pdf_creator             *string
	pdf_producer            *string
	isbn                    *string
	publisher               *string
	publication_year        *int
	addpublication_year     *int
	language                *string
	image_count             *int
	addimage_count          *int
	has_images              *bool
	added_at                *time.Time
	modified_at             *time.Time
	clearedFields           map[string]struct{}
	attachments             map[int]struct{}
	removedattachments      map[int]struct{}
	clearedattachments      bool
	done                    bool
	oldValue                func(context.Context) (*Document, error)
	predicates              []predicate.Document
}

var _ ent.Mutation = (*DocumentMutation)(nil)

// documentOption allows management of the mutation configuration using functional options.
type documentOption func(*DocumentMutation)

// newDocumentMutation creates new mutation for the Document entity.
func newDocumentMutation(c config, op Op, opts ...documentOption) *DocumentMutation {
	m := &DocumentMutation{
		config:        c,
		op:            op,
		typ:           TypeDocument,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDocumentID sets the ID field of the mutation.
func withDocumentID(id int) documentOption {
	return func(m *DocumentMutation) {
		var (
			err   error
			once  sync.Once
			value *Document
		)
		m.oldValue = func(ctx context.Context) (*Document, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Document.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDocument sets the old Document of the mutation.
func withDocument(node *Document) documentOption {
	return func(m *DocumentMutation) {
		m.oldValue = func(context.Context) (*Document, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DocumentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DocumentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DocumentMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DocumentMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Document.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTitle sets the "title" field.
func (m *DocumentMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *DocumentMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *DocumentMutation) ResetTitle() {
	m.title = nil
}

// SetAuthor sets the "author" field.
func (m *DocumentMutation) SetAuthor(s string) {
	m.author = &s
}

// Author returns the value of the "author" field in the mutation.
func (m *DocumentMutation) Author() (r string, exists bool) {
	v := m.author
	if v == nil {
		return
	}
	return *v, true
}

// OldAuthor returns the old "author" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldAuthor(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAuthor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAuthor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAuthor: %w", err)
	}
	return oldValue.Author, nil
}

// ClearAuthor clears the value of the "author" field.
func (m *DocumentMutation) ClearAuthor() {
	m.author = nil
	m.clearedFields[document.FieldAuthor] = struct{}{}
}

// AuthorCleared returns if the "author" field was cleared in this mutation.
func (m *DocumentMutation) AuthorCleared() bool {
	_, ok := m.clearedFields[document.FieldAuthor]
	return ok
}

// ResetAuthor resets all changes to the "author" field.
func (m *DocumentMutation) ResetAuthor() {
	m.author = nil
	delete(m.clearedFields, document.FieldAuthor)
}

// SetSourceType sets the "source_type" field.
func (m *DocumentMutation) SetSourceType(s string) {
	m.source_type = &s
}

// SourceType returns the value of the "source_type" field in the mutation.
func (m *DocumentMutation) SourceType() (r string, exists bool) {
	v := m.source_type
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceType returns the old "source_type" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldSourceType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceType: %w", err)
	}
	return oldValue.SourceType, nil
}

// ResetSourceType resets all changes to the "source_type" field.
func (m *DocumentMutation) ResetSourceType() {
	m.source_type = nil
}

// SetContentHash sets the "content_hash" field.
func (m *DocumentMutation) SetContentHash(s string) {
	m.content_hash = &s
}

// ContentHash returns the value of the "content_hash" field in the mutation.
func (m *DocumentMutation) ContentHash() (r string, exists bool) {
	v := m.content_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldContentHash returns the old "content_hash" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldContentHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentHash: %w", err)
	}
	return oldValue.ContentHash, nil
}

// ResetContentHash resets all changes to the "content_hash" field.
func (m *DocumentMutation) ResetContentHash() {
	m.content_hash = nil
}

// SetMarkdownPath sets the "markdown_path" field.
func (m *DocumentMutation) SetMarkdownPath(s string) {
	m.markdown_path = &s
}

// MarkdownPath returns the value of the "markdown_path" field in the mutation.
func (m *DocumentMutation) MarkdownPath() (r string, exists bool) {
	v := m.markdown_path
	if v == nil {
		return
	}
	return *v, true
}

// OldMarkdownPath returns the old "markdown_path" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldMarkdownPath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMarkdownPath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMarkdownPath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMarkdownPath: %w", err)
	}
	return oldValue.MarkdownPath, nil
}

// ResetMarkdownPath resets all changes to the "markdown_path" field.
func (m *DocumentMutation) ResetMarkdownPath() {
	m.markdown_path = nil
}

// SetOriginalPath sets the "original_path" field.
func (m *DocumentMutation) SetOriginalPath(s string) {
	m.original_path = &s
}

// OriginalPath returns the value of the "original_path" field in the mutation.
func (m *DocumentMutation) OriginalPath() (r string, exists bool) {
	v := m.original_path
	if v == nil {
		return
	}
	return *v, true
}

// OldOriginalPath returns the old "original_path" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldOriginalPath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOriginalPath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOriginalPath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOriginalPath: %w", err)
	}
	return oldValue.OriginalPath, nil
}

// ClearOriginalPath clears the value of the "original_path" field.
func (m *DocumentMutation) ClearOriginalPath() {
	m.original_path = nil
	m.clearedFields[document.FieldOriginalPath] = struct{}{}
}

// OriginalPathCleared returns if the "original_path" field was cleared in this mutation.
func (m *DocumentMutation) OriginalPathCleared() bool {
	_, ok := m.clearedFields[document.FieldOriginalPath]
	return ok
}

// ResetOriginalPath resets all changes to the "original_path" field.
func (m *DocumentMutation) ResetOriginalPath() {
	m.original_path = nil
	delete(m.clearedFields, document.FieldOriginalPath)
}

// SetPageCount sets the "page_count" field.
func (m *DocumentMutation) SetPageCount(i int) {
	m.page_count = &i
	m.addpage_count = nil
}

// PageCount returns the value of the "page_count" field in the mutation.
func (m *DocumentMutation) PageCount() (r int, exists bool) {
	v := m.page_count
	if v == nil {
		return
	}
	return *v, true
}

// OldPageCount returns the old "page_count" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldPageCount(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPageCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPageCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPageCount: %w", err)
	}
	return oldValue.PageCount, nil
}

// AddPageCount adds i to the "page_count" field.
func (m *DocumentMutation) AddPageCount(i int) {
	if m.addpage_count != nil {
		*m.addpage_count += i
	} else {
		m.addpage_count = &i
	}
}

// AddedPageCount returns the value that was added to the "page_count" field in this mutation.
func (m *DocumentMutation) AddedPageCount() (r int, exists bool) {
	v := m.addpage_count
	if v == nil {
		return
	}
	return *v, true
}

// ClearPageCount clears the value of the "page_count" field.
func (m *DocumentMutation) ClearPageCount() {
	m.page_count = nil
	m.addpage_count = nil
	m.clearedFields[document.FieldPageCount] = struct{}{}
}

// PageCountCleared returns if the "page_count" field was cleared in this mutation.
func (m *DocumentMutation) PageCountCleared() bool {
	_, ok := m.clearedFields[document.FieldPageCount]
	return ok
}

// ResetPageCount resets all changes to the "page_count" field.
func (m *DocumentMutation) ResetPageCount() {
	m.page_count = nil
	m.addpage_count = nil
	delete(m.clearedFields, document.FieldPageCount)
}

// SetWordCount sets the "word_count" field.
func (m *DocumentMutation) SetWordCount(i int) {
	m.word_count = &i
	m.addword_count = nil
}

// WordCount returns the value of the "word_count" field in the mutation.
func (m *DocumentMutation) WordCount() (r int, exists bool) {
	v := m.word_count
	if v == nil {
		return
	}
	return *v, true
}

// OldWordCount returns the old "word_count" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldWordCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWordCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWordCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWordCount: %w", err)
	}
	return oldValue.WordCount, nil
}

// AddWordCount adds i to the "word_count" field.
func (m *DocumentMutation) AddWordCount(i int) {
	if m.addword_count != nil {
		*m.addword_count += i
	} else {
		m.addword_count = &i
	}
}

// AddedWordCount returns the value that was added to the "word_count" field in this mutation.
func (m *DocumentMutation) AddedWordCount() (r int, exists bool) {
	v := m.addword_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetWordCount resets all changes to the "word_count" field.
func (m *DocumentMutation) ResetWordCount() {
	m.word_count = nil
	m.addword_count = nil
}

// SetChapterCount sets the "chapter_count" field.
func (m *DocumentMutation) SetChapterCount(i int) {
	m.chapter_count = &i
	m.addchapter_count = nil
}

// ChapterCount returns the value of the "chapter_count" field in the mutation.
func (m *DocumentMutation) ChapterCount() (r int, exists bool) {
	v := m.chapter_count
	if v == nil {
		return
	}
	return *v, true
}

// OldChapterCount returns the old "chapter_count" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldChapterCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChapterCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChapterCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChapterCount: %w", err)
	}
	return oldValue.ChapterCount, nil
}

// AddChapterCount adds i to the "chapter_count" field.
func (m *DocumentMutation) AddChapterCount(i int) {
	if m.addchapter_count != nil {
		*m.addchapter_count += i
	} else {
		m.addchapter_count = &i
	}
}

// AddedChapterCount returns the value that was added to the "chapter_count" field in this mutation.
func (m *DocumentMutation) AddedChapterCount() (r int, exists bool) {
	v := m.addchapter_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetChapterCount resets all changes to the "chapter_count" field.
func (m *DocumentMutation) ResetChapterCount() {
	m.chapter_count = nil
	m.addchapter_count = nil
}

// SetTableOfContents sets the "table_of_contents" field.
func (m *DocumentMutation) SetTableOfContents(ee []entity.TOCEntry) {
	m.table_of_contents = &ee
	m.appendtable_of_contents = nil
}

// TableOfContents returns the value of the "table_of_contents" field in the mutation.
func (m *DocumentMutation) TableOfContents() (r []entity.TOCEntry, exists bool) {
	v := m.table_of_contents
	if v == nil {
		return
	}
	return *v, true
}

// OldTableOfContents returns the old "table_of_contents" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldTableOfContents(ctx context.Context) (v []entity.TOCEntry, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTableOfContents is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTableOfContents requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTableOfContents: %w", err)
	}
	return oldValue.TableOfContents, nil
}

// AppendTableOfContents adds ee to the "table_of_contents" field.
func (m *DocumentMutation) AppendTableOfContents(ee []entity.TOCEntry) {
	m.appendtable_of_contents = append(m.appendtable_of_contents, ee...)
}

// AppendedTableOfContents returns the list of values that were appended to the "table_of_contents" field in this mutation.
func (m *DocumentMutation) AppendedTableOfContents() ([]entity.TOCEntry, bool) {
	if len(m.appendtable_of_contents) == 0 {
		return nil, false
	}
	return m.appendtable_of_contents, true
}

// ClearTableOfContents clears the value of the "table_of_contents" field.
func (m *DocumentMutation) ClearTableOfContents() {
	m.table_of_contents = nil
	m.appendtable_of_contents = nil
	m.clearedFields[document.FieldTableOfContents] = struct{}{}
}

// TableOfContentsCleared returns if the "table_of_contents" field was cleared in this mutation.
func (m *DocumentMutation) TableOfContentsCleared() bool {
	_, ok := m.clearedFields[document.FieldTableOfContents]
	return ok
}

// ResetTableOfContents resets all changes to the "table_of_contents" field.
func (m *DocumentMutation) ResetTableOfContents() {
	m.table_of_contents = nil
	m.appendtable_of_contents = nil
	delete(m.clearedFields, document.FieldTableOfContents)
}

// SetSubject sets the "subject" field.
func (m *DocumentMutation) SetSubject(s string) {
	m.subject = &s
}

// Subject returns the value of the "subject" field in the mutation.
func (m *DocumentMutation) Subject() (r string, exists bool) {
	v := m.subject
	if v == nil {
		return
	}
	return *v, true
}

// OldSubject returns the old "subject" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldSubject(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubject is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubject requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubject: %w", err)
	}
	return oldValue.Subject, nil
}

// ClearSubject clears the value of the "subject" field.
func (m *DocumentMutation) ClearSubject() {
	m.subject = nil
	m.clearedFields[document.FieldSubject] = struct{}{}
}

// SubjectCleared returns if the "subject" field was cleared in this mutation.
func (m *DocumentMutation) SubjectCleared() bool {
	_, ok := m.clearedFields[document.FieldSubject]
	return ok
}

// ResetSubject resets all changes to the "subject" field.
func (m *DocumentMutation) ResetSubject() {
	m.subject = nil
	delete(m.clearedFields, document.FieldSubject)
}

// SetKeywords sets the "keywords" field.
func (m *DocumentMutation) SetKeywords(s string) {
	m.keywords = &s
}

// Keywords returns the value of the "keywords" field in the mutation.
func (m *DocumentMutation) Keywords() (r string, exists bool) {
	v := m.keywords
	if v == nil {
		return
	}
	return *v, true
}

// OldKeywords returns the old "keywords" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldKeywords(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKeywords is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKeywords requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKeywords: %w", err)
	}
	return oldValue.Keywords, nil
}

// ClearKeywords clears the value of the "keywords" field.
func (m *DocumentMutation) ClearKeywords() {
	m.keywords = nil
	m.clearedFields[document.FieldKeywords] = struct{}{}
}

// KeywordsCleared returns if the "keywords" field was cleared in this mutation.
func (m *DocumentMutation) KeywordsCleared() bool {
	_, ok := m.clearedFields[document.FieldKeywords]
	return ok
}

// ResetKeywords resets all changes to the "keywords" field.
func (m *DocumentMutation) ResetKeywords() {
	m.keywords = nil
	delete(m.clearedFields, document.FieldKeywords)
}

// SetCategory sets the "category" field.
func (m *DocumentMutation) SetCategory(s string) {
	m.category = &s
}

// Category returns the value of the "category" field in the mutation.
func (m *DocumentMutation) Category() (r string, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldCategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ClearCategory clears the value of the "category" field.
func (m *DocumentMutation) ClearCategory() {
	m.category = nil
	m.clearedFields[document.FieldCategory] = struct{}{}
}

// CategoryCleared returns if the "category" field was cleared in this mutation.
func (m *DocumentMutation) CategoryCleared() bool {
	_, ok := m.clearedFields[document.FieldCategory]
	return ok
}

// ResetCategory resets all changes to the "category" field.
func (m *DocumentMutation) ResetCategory() {
	m.category = nil
	delete(m.clearedFields, document.FieldCategory)
}

// SetTags sets the "tags" field.
func (m *DocumentMutation) SetTags(s []string) {
	m.tags = &s
	m.appendtags = nil
}

// Tags returns the value of the "tags" field in the mutation.
func (m *DocumentMutation) Tags() (r []string, exists bool) {
	v := m.tags
	if v == nil {
		return
	}
	return *v, true
}

// OldTags returns the old "tags" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldTags(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTags is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTags requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTags: %w", err)
	}
	return oldValue.Tags, nil
}

// AppendTags adds s to the "tags" field.
func (m *DocumentMutation) AppendTags(s []string) {
	m.appendtags = append(m.appendtags, s...)
}

// AppendedTags returns the list of values that were appended to the "tags" field in this mutation.
func (m *DocumentMutation) AppendedTags() ([]string, bool) {
	if len(m.appendtags) == 0 {
		return nil, false
	}
	return m.appendtags, true
}

// ClearTags clears the value of the "tags" field.
func (m *DocumentMutation) ClearTags() {
	m.tags = nil
	m.appendtags = nil
	m.clearedFields[document.FieldTags] = struct{}{}
}

// TagsCleared returns if the "tags" field was cleared in this mutation.
func (m *DocumentMutation) TagsCleared() bool {
	_, ok := m.clearedFields[document.FieldTags]
	return ok
}

// ResetTags resets all changes to the "tags" field.
func (m *DocumentMutation) ResetTags() {
	m.tags = nil
	m.appendtags = nil
	delete(m.clearedFields, document.FieldTags)
}

// SetPdfCreationDate sets the "pdf_creation_date" field.
func (m *DocumentMutation) SetPdfCreationDate(t time.Time) {
	m.pdf_creation_date = &t
}

// PdfCreationDate returns the value of the "pdf_creation_date" field in the mutation.
func (m *DocumentMutation) PdfCreationDate() (r time.Time, exists bool) {
	v := m.pdf_creation_date
	if v == nil {
		return
	}
	return *v, true
}

// OldPdfCreationDate returns the old "pdf_creation_date" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldPdfCreationDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPdfCreationDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPdfCreationDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPdfCreationDate: %w", err)
	}
	return oldValue.PdfCreationDate, nil
}

// ClearPdfCreationDate clears the value of the "pdf_creation_date" field.
func (m *DocumentMutation) ClearPdfCreationDate() {
	m.pdf_creation_date = nil
	m.clearedFields[document.FieldPdfCreationDate] = struct{}{}
}

// PdfCreationDateCleared returns if the "pdf_creation_date" field was cleared in this mutation.
func (m *DocumentMutation) PdfCreationDateCleared() bool {
	_, ok := m.clearedFields[document.FieldPdfCreationDate]
	return ok
}

// ResetPdfCreationDate resets all changes to the "pdf_creation_date" field.
func (m *DocumentMutation) ResetPdfCreationDate() {
	m.pdf_creation_date = nil
	delete(m.clearedFields, document.FieldPdfCreationDate)
}

// SetPdfModDate sets the "pdf_mod_date" field.
func (m *DocumentMutation) SetPdfModDate(t time.Time) {
	m.pdf_mod_date = &t
}

// PdfModDate returns the value of the "pdf_mod_date" field in the mutation.
func (m *DocumentMutation) PdfModDate() (r time.Time, exists bool) {
	v := m.pdf_mod_date
	if v == nil {
		return
	}
	return *v, true
}

// OldPdfModDate returns the old "pdf_mod_date" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldPdfModDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPdfModDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPdfModDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPdfModDate: %w", err)
	}
	return oldValue.PdfModDate, nil
}

// ClearPdfModDate clears the value of the "pdf_mod_date" field.
func (m *DocumentMutation) ClearPdfModDate() {
	m.pdf_mod_date = nil
	m.clearedFields[document.FieldPdfModDate] = struct{}{}
}

// PdfModDateCleared returns if the "pdf_mod_date" field was cleared in this mutation.
func (m *DocumentMutation) PdfModDateCleared() bool {
	_, ok := m.clearedFields[document.FieldPdfModDate]
	return ok
}

// ResetPdfModDate resets all changes to the "pdf_mod_date" field.
func (m *DocumentMutation) ResetPdfModDate() {
	m.pdf_mod_date = nil
	delete(m.clearedFields, document.FieldPdfModDate)
}

// SetPdfCreator sets the "pdf_creator" field.
func (m *DocumentMutation) SetPdfCreator(s string) {
	m.pdf_creator = &s
}

// PdfCreator returns the value of the "pdf_creator" field in the mutation.
func (m *DocumentMutation) PdfCreator() (r string, exists bool) {
	v := m.pdf_creator
	if v == nil {
		return
	}
	return *v, true
}

// OldPdfCreator returns the old "pdf_creator" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldPdfCreator(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPdfCreator is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPdfCreator requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPdfCreator: %w", err)
	}
	return oldValue.PdfCreator, nil
}

// ClearPdfCreator clears the value of the "pdf_creator" field.
func (m *DocumentMutation) ClearPdfCreator() {
	m.pdf_creator = nil
	m.clearedFields[document.FieldPdfCreator] = struct{}{}
}

// PdfCreatorCleared returns if the "pdf_creator" field was cleared in this mutation.
func (m *DocumentMutation) PdfCreatorCleared() bool {
	_, ok := m.clearedFields[document.FieldPdfCreator]
	return ok
}

// ResetPdfCreator resets all changes to the "pdf_creator" field.
func (m *DocumentMutation) ResetPdfCreator() {
	m.pdf_creator = nil
	delete(m.clearedFields, document.FieldPdfCreator)
}

// SetPdfProducer sets the "pdf_producer" field.
func (m *DocumentMutation) SetPdfProducer(s string) {
	m.pdf_producer = &s
}

// PdfProducer returns the value of the "pdf_producer" field in the mutation.
func (m *DocumentMutation) PdfProducer() (r string, exists bool) {
	v := m.pdf_producer
	if v == nil {
		return
	}
	return *v, true
}

// OldPdfProducer returns the old "pdf_producer" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldPdfProducer(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPdfProducer is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPdfProducer requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPdfProducer: %w", err)
	}
	return oldValue.PdfProducer, nil
}

// ClearPdfProducer clears the value of the "pdf_producer" field.
func (m *DocumentMutation) ClearPdfProducer() {
	m.pdf_producer = nil
	m.clearedFields[document.FieldPdfProducer] = struct{}{}
}

// PdfProducerCleared returns if the "pdf_producer" field was cleared in this mutation.
func (m *DocumentMutation) PdfProducerCleared() bool {
	_, ok := m.clearedFields[document.FieldPdfProducer]
	return ok
}

// ResetPdfProducer resets all changes to the "pdf_producer" field.
func (m *DocumentMutation) ResetPdfProducer() {
	m.pdf_producer = nil
	delete(m.clearedFields, document.FieldPdfProducer)
}

// SetIsbn sets the "isbn" field.
func (m *DocumentMutation) SetIsbn(s string) {
	m.isbn = &s
}

// Isbn returns the value of the "isbn" field in the mutation.
func (m *DocumentMutation) Isbn() (r string, exists bool) {
	v := m.isbn
	if v == nil {
		return
	}
	return *v, true
}

// OldIsbn returns the old "isbn" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldIsbn(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsbn is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsbn requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsbn: %w", err)
	}
	return oldValue.Isbn, nil
}

// ClearIsbn clears the value of the "isbn" field.
func (m *DocumentMutation) ClearIsbn() {
	m.isbn = nil
	m.clearedFields[document.FieldIsbn] = struct{}{}
}

// IsbnCleared returns if the "isbn" field was cleared in this mutation.
func (m *DocumentMutation) IsbnCleared() bool {
	_, ok := m.clearedFields[document.FieldIsbn]
	return ok
}

// ResetIsbn resets all changes to the "isbn" field.
func (m *DocumentMutation) ResetIsbn() {
	m.isbn = nil
	delete(m.clearedFields, document.FieldIsbn)
}

// SetPublisher sets the "publisher" field.
func (m *DocumentMutation) SetPublisher(s string) {
	m.publisher = &s
}

// Publisher returns the value of the "publisher" field in the mutation.
func (m *DocumentMutation) Publisher() (r string, exists bool) {
	v := m.publisher
	if v == nil {
		return
	}
	return *v, true
}

// OldPublisher returns the old "publisher" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldPublisher(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPublisher is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPublisher requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPublisher: %w", err)
	}
	return oldValue.Publisher, nil
}

// ClearPublisher clears the value of the "publisher" field.
func (m *DocumentMutation) ClearPublisher() {
	m.publisher = nil
	m.clearedFields[document.FieldPublisher] = struct{}{}
}

// PublisherCleared returns if the "publisher" field was cleared in this mutation.
func (m *DocumentMutation) PublisherCleared() bool {
	_, ok := m.clearedFields[document.FieldPublisher]
	return ok
}

// ResetPublisher resets all changes to the "publisher" field.
func (m *DocumentMutation) ResetPublisher() {
	m.publisher = nil
	delete(m.clearedFields, document.FieldPublisher)
}

// SetPublicationYear sets the "publication_year" field.
func (m *DocumentMutation) SetPublicationYear(i int) {
	m.publication_year = &i
	m.addpublication_year = nil
}

// PublicationYear returns the value of the "publication_year" field in the mutation.
func (m *DocumentMutation) PublicationYear() (r int, exists bool) {
	v := m.publication_year
	if v == nil {
		return
	}
	return *v, true
}

// OldPublicationYear returns the old "publication_year" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldPublicationYear(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPublicationYear is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPublicationYear requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPublicationYear: %w", err)
	}
	return oldValue.PublicationYear, nil
}

// AddPublicationYear adds i to the "publication_year" field.
func (m *DocumentMutation) AddPublicationYear(i int) {
	if m.addpublication_year != nil {
		*m.addpublication_year += i
	} else {
		m.addpublication_year = &i
	}
}

// AddedPublicationYear returns the value that was added to the "publication_year" field in this mutation.
func (m *DocumentMutation) AddedPublicationYear() (r int, exists bool) {
	v := m.addpublication_year
	if v == nil {
		return
	}
	return *v, true
}

// ClearPublicationYear clears the value of the "publication_year" field.
func (m *DocumentMutation) ClearPublicationYear() {
	m.publication_year = nil
	m.addpublication_year = nil
	m.clearedFields[document.FieldPublicationYear] = struct{}{}
}

// PublicationYearCleared returns if the "publication_year" field was cleared in this mutation.
func (m *DocumentMutation) PublicationYearCleared() bool {
	_, ok := m.clearedFields[document.FieldPublicationYear]
	return ok
}

// ResetPublicationYear resets all changes to the "publication_year" field.
func (m *DocumentMutation) ResetPublicationYear() {
	m.publication_year = nil
	m.addpublication_year = nil
	delete(m.clearedFields, document.FieldPublicationYear)
}

// SetLanguage sets the "language" field.
func (m *DocumentMutation) SetLanguage(s string) {
	m.language = &s
}

// Language returns the value of the "language" field in the mutation.
func (m *DocumentMutation) Language() (r string, exists bool) {
	v := m.language
	if v == nil {
		return
	}
	return *v, true
}

// OldLanguage returns the old "language" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldLanguage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLanguage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLanguage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLanguage: %w", err)
	}
	return oldValue.Language, nil
}

// ResetLanguage resets all changes to the "language" field.
func (m *DocumentMutation) ResetLanguage() {
	m.language = nil
}

// SetImageCount sets the "image_count" field.
func (m *DocumentMutation) SetImageCount(i int) {
	m.image_count = &i
	m.addimage_count = nil
}

// ImageCount returns the value of the "image_count" field in the mutation.
func (m *DocumentMutation) ImageCount() (r int, exists bool) {
	v := m.image_count
	if v == nil {
		return
	}
	return *v, true
}

// OldImageCount returns the old "image_count" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldImageCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImageCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImageCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImageCount: %w", err)
	}
	return oldValue.ImageCount, nil
}

// AddImageCount adds i to the "image_count" field.
func (m *DocumentMutation) AddImageCount(i int) {
	if m.addimage_count != nil {
		*m.addimage_count += i
	} else {
		m.addimage_count = &i
	}
}

// AddedImageCount returns the value that was added to the "image_count" field in this mutation.
func (m *DocumentMutation) AddedImageCount() (r int, exists bool) {
	v := m.addimage_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetImageCount resets all changes to the "image_count" field.
func (m *DocumentMutation) ResetImageCount() {
	m.image_count = nil
	m.addimage_count = nil
}

// SetHasImages sets the "has_images" field.
func (m *DocumentMutation) SetHasImages(b bool) {
	m.has_images = &b
}

// HasImages returns the value of the "has_images" field in the mutation.
func (m *DocumentMutation) HasImages() (r bool, exists bool) {
	v := m.has_images
	if v == nil {
		return
	}
	return *v, true
}

// OldHasImages returns the old "has_images" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldHasImages(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHasImages is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHasImages requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHasImages: %w", err)
	}
	return oldValue.HasImages, nil
}

// ResetHasImages resets all changes to the "has_images" field.
func (m *DocumentMutation) ResetHasImages() {
	m.has_images = nil
}

// SetAddedAt sets the "added_at" field.
func (m *DocumentMutation) SetAddedAt(t time.Time) {
	m.added_at = &t
}

// AddedAt returns the value of the "added_at" field in the mutation.
func (m *DocumentMutation) AddedAt() (r time.Time, exists bool) {
	v := m.added_at
	if v == nil {
		return
	}
	return *v, true
}

// OldAddedAt returns the old "added_at" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldAddedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAddedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAddedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAddedAt: %w", err)
	}
	return oldValue.AddedAt, nil
}

// ResetAddedAt resets all changes to the "added_at" field.
func (m *DocumentMutation) ResetAddedAt() {
	m.added_at = nil
}

// SetModifiedAt sets the "modified_at" field.
func (m *DocumentMutation) SetModifiedAt(t time.Time) {
	m.modified_at = &t
}

// ModifiedAt returns the value of the "modified_at" field in the mutation.
func (m *DocumentMutation) ModifiedAt() (r time.Time, exists bool) {
	v := m.modified_at
	if v == nil {
		return
	}
	return *v, true
}

// OldModifiedAt returns the old "modified_at" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldModifiedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModifiedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModifiedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModifiedAt: %w", err)
	}
	return oldValue.ModifiedAt, nil
}

// ResetModifiedAt resets all changes to the "modified_at" field.
func (m *DocumentMutation) ResetModifiedAt() {
	m.modified_at = nil
}

// AddAttachmentIDs adds the "attachments" edge to the DocumentImage entity by ids.
func (m *DocumentMutation) AddAttachmentIDs(ids ...int) {
	if m.attachments == nil {
		m.attachments = make(map[int]struct{})
	}
	for i := range ids {
		m.attachments[ids[i]] = struct{}{}
	}
}

// ClearAttachments clears the "attachments" edge to the DocumentImage entity.
func (m *DocumentMutation) ClearAttachments() {
	m.clearedattachments = true
}

// AttachmentsCleared reports if the "attachments" edge to the DocumentImage entity was cleared.
func (m *DocumentMutation) AttachmentsCleared() bool {
	return m.clearedattachments
}

// RemoveAttachmentIDs removes the "attachments" edge to the DocumentImage entity by IDs.
func (m *DocumentMutation) RemoveAttachmentIDs(ids ...int) {
	if m.removedattachments == nil {
		m.removedattachments = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.attachments, ids[i])
		m.removedattachments[ids[i]] = struct{}{}
	}
}

// RemovedAttachments returns the removed IDs of the "attachments" edge to the DocumentImage entity.
func (m *DocumentMutation) RemovedAttachmentsIDs() (ids []int) {
	for id := range m.removedattachments {
		ids = append(ids, id)
	}
	return
}

// AttachmentsIDs returns the "attachments" edge IDs in the mutation.
func (m *DocumentMutation) AttachmentsIDs() (ids []int) {
	for id := range m.attachments {
		ids = append(ids, id)
	}
	return
}

// ResetAttachments resets all changes to the "attachments" edge.
func (m *DocumentMutation) ResetAttachments() {
	m.attachments = nil
	m.clearedattachments = false
	m.removedattachments = nil
}

// Where appends a list predicates to the DocumentMutation builder.
func (m *DocumentMutation) Where(ps ...predicate.Document) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DocumentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DocumentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Document, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DocumentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DocumentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Document).
func (m *DocumentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DocumentMutation) Fields() []string {
	fields := make([]string, 0, 26)
	if m.title != nil {
		fields = append(fields, document.FieldTitle)
	}
	if m.author != nil {
		fields = append(fields, document.FieldAuthor)
	}
	if m.source_type != nil {
		fields = append(fields, document.FieldSourceType)
	}
	if m.content_hash != nil {
		fields = append(fields, document.FieldContentHash)
	}
	if m.markdown_path != nil {
		fields = append(fields, document.FieldMarkdownPath)
	}
	if m.original_path != nil {
		fields = append(fields, document.FieldOriginalPath)
	}
	if m.page_count != nil {
		fields = append(fields, document.FieldPageCount)
	}
	if m.word_count != nil {
		fields = append(fields, document.FieldWordCount)
	}
	if m.chapter_count != nil {
		fields = append(fields, document.FieldChapterCount)
	}
	if m.table_of_contents != nil {
		fields = append(fields, document.FieldTableOfContents)
	}
	if m.subject != nil {
		fields = append(fields, document.FieldSubject)
	}
	if m.keywords != nil {
		fields = append(fields, document.FieldKeywords)
	}
	if m.category != nil {
		fields = append(fields, document.FieldCategory)
	}
	if m.tags != nil {
		fields = append(fields, document.FieldTags)
	}
	if m.pdf_creation_date != nil {
		fields = append(fields, document.FieldPdfCreationDate)
	}
	if m.pdf_mod_date != nil {
		fields = append(fields, document.FieldPdfModDate)
	}
	if m.pdf_creator != nil {
		fields = append(fields, document.FieldPdfCreator)
	}
	if m.pdf_producer != nil {
		fields = append(fields, document.FieldPdfProducer)
	}
	if m.isbn != nil {
		fields = append(fields, document.FieldIsbn)
	}
	if m.publisher != nil {
		fields = append(fields, document.FieldPublisher)
	}
	if m.publication_year != nil {
		fields = append(fields, document.FieldPublicationYear)
	}
	if m.language != nil {
		fields = append(fields, document.FieldLanguage)
	}
	if m.image_count != nil {
		fields = append(fields, document.FieldImageCount)
	}
	if m.has_images != nil {
		fields = append(fields, document.FieldHasImages)
	}
	if m.added_at != nil {
		fields = append(fields, document.FieldAddedAt)
	}
	if m.modified_at != nil {
		fields = append(fields, document.FieldModifiedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DocumentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case document.FieldTitle:
		return m.Title()
	case document.FieldAuthor:
		return m.Author()
	case document.FieldSourceType:
		return m.SourceType()
	case document.FieldContentHash:
		return m.ContentHash()
	case document.FieldMarkdownPath:
		return m.MarkdownPath()
	case document.FieldOriginalPath:
		return m.OriginalPath()
	case document.FieldPageCount:
		return m.PageCount()
	case document.FieldWordCount:
		return m.WordCount()
	case document.FieldChapterCount:
		return m.ChapterCount()
	case document.FieldTableOfContents:
		return m.TableOfContents()
	case document.FieldSubject:
		return m.Subject()
	case document.FieldKeywords:
		return m.Keywords()
	case document.FieldCategory:
		return m.Category()
	case document.FieldTags:
		return m.Tags()
	case document.FieldPdfCreationDate:
		return m.PdfCreationDate()
	case document.FieldPdfModDate:
		return m.PdfModDate()
	case document.FieldPdfCreator:
		return m.PdfCreator()
	case document.FieldPdfProducer:
		return m.PdfProducer()
	case document.FieldIsbn:
		return m.Isbn()
	case document.FieldPublisher:
		return m.Publisher()
	case document.FieldPublicationYear:
		return m.PublicationYear()
	case document.FieldLanguage:
		return m.Language()
	case document.FieldImageCount:
		return m.ImageCount()
	case document.FieldHasImages:
		return m.HasImages()
	case document.FieldAddedAt:
		return m.AddedAt()
	case document.FieldModifiedAt:
		return m.ModifiedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DocumentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case document.FieldTitle:
		return m.OldTitle(ctx)
	case document.FieldAuthor:
		return m.OldAuthor(ctx)
	case document.FieldSourceType:
		return m.OldSourceType(ctx)
	case document.FieldContentHash:
		return m.OldContentHash(ctx)
	case document.FieldMarkdownPath:
		return m.OldMarkdownPath(ctx)
	case document.FieldOriginalPath:
		return m.OldOriginalPath(ctx)
	case document.FieldPageCount:
		return m.OldPageCount(ctx)
	case document.FieldWordCount:
		return m.OldWordCount(ctx)
	case document.FieldChapterCount:
		return m.OldChapterCount(ctx)
	case document.FieldTableOfContents:
		return m.OldTableOfContents(ctx)
	case document.FieldSubject:
		return m.OldSubject(ctx)
	case document.FieldKeywords:
		return m.OldKeywords(ctx)
	case document.FieldCategory:
		return m.OldCategory(ctx)
	case document.FieldTags:
		return m.OldTags(ctx)
	case document.FieldPdfCreationDate:
		return m.OldPdfCreationDate(ctx)
	case document.FieldPdfModDate:
		return m.OldPdfModDate(ctx)
	case document.FieldPdfCreator:
		return m.OldPdfCreator(ctx)
	case document.FieldPdfProducer:
		return m.OldPdfProducer(ctx)
	case document.FieldIsbn:
		return m.OldIsbn(ctx)
	case document.FieldPublisher:
		return m.OldPublisher(ctx)
	case document.FieldPublicationYear:
		return m.OldPublicationYear(ctx)
	case document.FieldLanguage:
		return m.OldLanguage(ctx)
	case document.FieldImageCount:
		return m.OldImageCount(ctx)
	case document.FieldHasImages:
		return m.OldHasImages(ctx)
	case document.FieldAddedAt:
		return m.OldAddedAt(ctx)
	case document.FieldModifiedAt:
		return m.OldModifiedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Document field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case document.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case document.FieldAuthor:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAuthor(v)
		return nil
	case document.FieldSourceType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceType(v)
		return nil
	case document.FieldContentHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentHash(v)
		return nil
	case document.FieldMarkdownPath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMarkdownPath(v)
		return nil
	case document.FieldOriginalPath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOriginalPath(v)
		return nil
	case document.FieldPageCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPageCount(v)
		return nil
	case document.FieldWordCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWordCount(v)
		return nil
	case document.FieldChapterCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChapterCount(v)
		return nil
	case document.FieldTableOfContents:
		v, ok := value.([]entity.TOCEntry)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTableOfContents(v)
		return nil
	case document.FieldSubject:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubject(v)
		return nil
	case document.FieldKeywords:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKeywords(v)
		return nil
	case document.FieldCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case document.FieldTags:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTags(v)
		return nil
	case document.FieldPdfCreationDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPdfCreationDate(v)
		return nil
	case document.FieldPdfModDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPdfModDate(v)
		return nil
	case document.FieldPdfCreator:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPdfCreator(v)
		return nil
	case document.FieldPdfProducer:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPdfProducer(v)
		return nil
	case document.FieldIsbn:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsbn(v)
		return nil
	case document.FieldPublisher:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPublisher(v)
		return nil
	case document.FieldPublicationYear:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPublicationYear(v)
		return nil
	case document.FieldLanguage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLanguage(v)
		return nil
	case document.FieldImageCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImageCount(v)
		return nil
	case document.FieldHasImages:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHasImages(v)
		return nil
	case document.FieldAddedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAddedAt(v)
		return nil
	case document.FieldModifiedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModifiedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Document field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DocumentMutation) AddedFields() []string {
	var fields []string
	if m.addpage_count != nil {
		fields = append(fields, document.FieldPageCount)
	}
	if m.addword_count != nil {
		fields = append(fields, document.FieldWordCount)
	}
	if m.addchapter_count != nil {
		fields = append(fields, document.FieldChapterCount)
	}
	if m.addpublication_year != nil {
		fields = append(fields, document.FieldPublicationYear)
	}
	if m.addimage_count != nil {
		fields = append(fields, document.FieldImageCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DocumentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case document.FieldPageCount:
		return m.AddedPageCount()
	case document.FieldWordCount:
		return m.AddedWordCount()
	case document.FieldChapterCount:
		return m.AddedChapterCount()
	case document.FieldPublicationYear:
		return m.AddedPublicationYear()
	case document.FieldImageCount:
		return m.AddedImageCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case document.FieldPageCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPageCount(v)
		return nil
	case document.FieldWordCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWordCount(v)
		return nil
	case document.FieldChapterCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddChapterCount(v)
		return nil
	case document.FieldPublicationYear:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPublicationYear(v)
		return nil
	case document.FieldImageCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddImageCount(v)
		return nil
	}
	return fmt.Errorf("unknown Document numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DocumentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(document.FieldAuthor) {
		fields = append(fields, document.FieldAuthor)
	}
	if m.FieldCleared(document.FieldOriginalPath) {
		fields = append(fields, document.FieldOriginalPath)
	}
	if m.FieldCleared(document.FieldPageCount) {
		fields = append(fields, document.FieldPageCount)
	}
	if m.FieldCleared(document.FieldTableOfContents) {
		fields = append(fields, document.FieldTableOfContents)
	}
	if m.FieldCleared(document.FieldSubject) {
		fields = append(fields, document.FieldSubject)
	}
	if m.FieldCleared(document.FieldKeywords) {
		fields = append(fields, document.FieldKeywords)
	}
	if m.FieldCleared(document.FieldCategory) {
		fields = append(fields, document.FieldCategory)
	}
	if m.FieldCleared(document.FieldTags) {
		fields = append(fields, document.FieldTags)
	}
	if m.FieldCleared(document.FieldPdfCreationDate) {
		fields = append(fields, document.FieldPdfCreationDate)
	}
	if m.FieldCleared(document.FieldPdfModDate) {
		fields = append(fields, document.FieldPdfModDate)
	}
	if m.FieldCleared(document.FieldPdfCreator) {
		fields = append(fields, document.FieldPdfCreator)
	}
	if m.FieldCleared(document.FieldPdfProducer) {
		fields = append(fields, document.FieldPdfProducer)
	}
	if m.FieldCleared(document.FieldIsbn) {
		fields = append(fields, document.FieldIsbn)
	}
	if m.FieldCleared(document.FieldPublisher) {
		fields = append(fields, document.FieldPublisher)
	}
	if m.FieldCleared(document.FieldPublicationYear) {
		fields = append(fields, document.FieldPublicationYear)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DocumentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DocumentMutation) ClearField(name string) error {
	switch name {
	case document.FieldAuthor:
		m.ClearAuthor()
		return nil
	case document.FieldOriginalPath:
		m.ClearOriginalPath()
		return nil
	case document.FieldPageCount:
		m.ClearPageCount()
		return nil
	case document.FieldTableOfContents:
		m.ClearTableOfContents()
		return nil
	case document.FieldSubject:
		m.ClearSubject()
		return nil
	case document.FieldKeywords:
		m.ClearKeywords()
		return nil
	case document.FieldCategory:
		m.ClearCategory()
		return nil
	case document.FieldTags:
		m.ClearTags()
		return nil
	case document.FieldPdfCreationDate:
		m.ClearPdfCreationDate()
		return nil
	case document.FieldPdfModDate:
		m.ClearPdfModDate()
		return nil
	case document.FieldPdfCreator:
		m.ClearPdfCreator()
		return nil
	case document.FieldPdfProducer:
		m.ClearPdfProducer()
		return nil
	case document.FieldIsbn:
		m.ClearIsbn()
		return nil
	case document.FieldPublisher:
		m.ClearPublisher()
		return nil
	case document.FieldPublicationYear:
		m.ClearPublicationYear()
		return nil
	}
	return fmt.Errorf("unknown Document nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DocumentMutation) ResetField(name string) error {
	switch name {
	case document.FieldTitle:
		m.ResetTitle()
		return nil
	case document.FieldAuthor:
		m.ResetAuthor()
		return nil
	case document.FieldSourceType:
		m.ResetSourceType()
		return nil
	case document.FieldContentHash:
		m.ResetContentHash()
		return nil
	case document.FieldMarkdownPath:
		m.ResetMarkdownPath()
		return nil
	case document.FieldOriginalPath:
		m.ResetOriginalPath()
		return nil
	case document.FieldPageCount:
		m.ResetPageCount()
		return nil
	case document.FieldWordCount:
		m.ResetWordCount()
		return nil
	case document.FieldChapterCount:
		m.ResetChapterCount()
		return nil
	case document.FieldTableOfContents:
		m.ResetTableOfContents()
		return nil
	case document.FieldSubject:
		m.ResetSubject()
		return nil
	case document.FieldKeywords:
		m.ResetKeywords()
		return nil
	case document.FieldCategory:
		m.ResetCategory()
		return nil
	case document.FieldTags:
		m.ResetTags()
		return nil
	case document.FieldPdfCreationDate:
		m.ResetPdfCreationDate()
		return nil
	case document.FieldPdfModDate:
		m.ResetPdfModDate()
		return nil
	case document.FieldPdfCreator:
		m.ResetPdfCreator()
		return nil
	case document.FieldPdfProducer:
		m.ResetPdfProducer()
		return nil
	case document.FieldIsbn:
		m.ResetIsbn()
		return nil
	case document.FieldPublisher:
		m.ResetPublisher()
		return nil
	case document.FieldPublicationYear:
		m.ResetPublicationYear()
		return nil
	case document.FieldLanguage:
		m.ResetLanguage()
		return nil
	case document.FieldImageCount:
		m.ResetImageCount()
		return nil
	case document.FieldHasImages:
		m.ResetHasImages()
		return nil
	case document.FieldAddedAt:
		m.ResetAddedAt()
		return nil
	case document.FieldModifiedAt:
		m.ResetModifiedAt()
		return nil
	}
	return fmt.Errorf("unknown Document field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DocumentMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.attachments != nil {
		edges = append(edges, document.EdgeAttachments)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DocumentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case document.EdgeAttachments:
		ids := make([]ent.Value, 0, len(m.attachments))
		for id := range m.attachments {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DocumentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedattachments != nil {
		edges = append(edges, document.EdgeAttachments)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DocumentMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case document.EdgeAttachments:
		ids := make([]ent.Value, 0, len(m.removedattachments))
		for id := range m.removedattachments {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DocumentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedattachments {
		edges = append(edges, document.EdgeAttachments)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DocumentMutation) EdgeCleared(name string) bool {
	switch name {
	case document.EdgeAttachments:
		return m.clearedattachments
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DocumentMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Document unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DocumentMutation) ResetEdge(name string) error {
	switch name {
	case document.EdgeAttachments:
		m.ResetAttachments()
		return nil
	}
	return fmt.Errorf("unknown Document edge %s", name)
}

// DocumentImageMutation represents an operation that mutates the DocumentImage nodes in the graph.
type DocumentImageMutation struct {
	config
	op                     Op
	typ                    string
	id                     *int
	page_number            *int
	addpage_number         *int
	printed_page_number    *int
	addprinted_page_number *int
	xref                   *int
	addxref                *int
	file_path              *string
	width                  *int
	addwidth               *int
	height                 *int
	addheight              *int
	format                 *string
	colorspace             *string
	has_transparency       *bool
	file_size              *int
	addfile_size           *int
	created_at             *time.Time
	clearedFields          map[string]struct{}
	document               *int
	cleareddocument        bool
	done                   bool
	oldValue               func(context.Context) (*DocumentImage, error)
	predicates             []predicate.DocumentImage
}

var _ ent.Mutation = (*DocumentImageMutation)(nil)

// documentimageOption allows management of the mutation configuration using functional options.
type documentimageOption func(*DocumentImageMutation)

// newDocumentImageMutation creates new mutation for the DocumentImage entity.
func newDocumentImageMutation(c config, op Op, opts ...documentimageOption) *DocumentImageMutation {
	m := &DocumentImageMutation{
		config:        c,
		op:            op,
		typ:           TypeDocumentImage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDocumentImageID sets the ID field of the mutation.
func withDocumentImageID(id int) documentimageOption {
	return func(m *DocumentImageMutation) {
		var (
			err   error
			once  sync.Once
			value *DocumentImage
		)
		m.oldValue = func(ctx context.Context) (*DocumentImage, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DocumentImage.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDocumentImage sets the old DocumentImage of the mutation.
func withDocumentImage(node *DocumentImage) documentimageOption {
	return func(m *DocumentImageMutation) {
		m.oldValue = func(context.Context) (*DocumentImage, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DocumentImageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DocumentImageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DocumentImageMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DocumentImageMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DocumentImage.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDocumentID sets the "document_id" field.
func (m *DocumentImageMutation) SetDocumentID(i int) {
	m.document = &i
}

// DocumentID returns the value of the "document_id" field in the mutation.
func (m *DocumentImageMutation) DocumentID() (r int, exists bool) {
	v := m.document
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentID returns the old "document_id" field's value of the DocumentImage entity.
// If the DocumentImage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentImageMutation) OldDocumentID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentID: %w", err)
	}
	return oldValue.DocumentID, nil
}

// ResetDocumentID resets all changes to the "document_id" field.
func (m *DocumentImageMutation) ResetDocumentID() {
	m.document = nil
}

// SetPageNumber sets the "page_number" field.
func (m *DocumentImageMutation) SetPageNumber(i int) {
	m.page_number = &i
	m.addpage_number = nil
}

// PageNumber returns the value of the "page_number" field in the mutation.
func (m *DocumentImageMutation) PageNumber() (r int, exists bool) {
	v := m.page_number
	if v == nil {
		return
	}
	return *v, true
}

// OldPageNumber returns the old "page_number" field's value of the DocumentImage entity.
// If the DocumentImage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentImageMutation) OldPageNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPageNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPageNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPageNumber: %w", err)
	}
	return oldValue.PageNumber, nil
}

// AddPageNumber adds i to the "page_number" field.
func (m *DocumentImageMutation) AddPageNumber(i int) {
	if m.addpage_number != nil {
		*m.addpage_number += i
	} else {
		m.addpage_number = &i
	}
}

// AddedPageNumber returns the value that was added to the "page_number" field in this mutation.
func (m *DocumentImageMutation) AddedPageNumber() (r int, exists bool) {
	v := m.addpage_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetPageNumber resets all changes to the "page_number" field.
func (m *DocumentImageMutation) ResetPageNumber() {
	m.page_number = nil
	m.addpage_number = nil
}

// SetPrintedPageNumber sets the "printed_page_number" field.
func (m *DocumentImageMutation) SetPrintedPageNumber(i int) {
	m.printed_page_number = &i
	m.addprinted_page_number = nil
}

// PrintedPageNumber returns the value of the "printed_page_number" field in the mutation.
func (m *DocumentImageMutation) PrintedPageNumber() (r int, exists bool) {
	v := m.printed_page_number
	if v == nil {
		return
	}
	return *v, true
}

// OldPrintedPageNumber returns the old "printed_page_number" field's value of the DocumentImage entity.
// If the DocumentImage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentImageMutation) OldPrintedPageNumber(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrintedPageNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrintedPageNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrintedPageNumber: %w", err)
	}
	return oldValue.PrintedPageNumber, nil
}

// AddPrintedPageNumber adds i to the "printed_page_number" field.
func (m *DocumentImageMutation) AddPrintedPageNumber(i int) {
	if m.addprinted_page_number != nil {
		*m.addprinted_page_number += i
	} else {
		m.addprinted_page_number = &i
	}
}

// AddedPrintedPageNumber returns the value that was added to the "printed_page_number" field in this mutation.
func (m *DocumentImageMutation) AddedPrintedPageNumber() (r int, exists bool) {
	v := m.addprinted_page_number
	if v == nil {
		return
	}
	return *v, true
}

// ClearPrintedPageNumber clears the value of the "printed_page_number" field.
func (m *DocumentImageMutation) ClearPrintedPageNumber() {
	m.printed_page_number = nil
	m.addprinted_page_number = nil
	m.clearedFields[documentimage.FieldPrintedPageNumber] = struct{}{}
}

// PrintedPageNumberCleared returns if the "printed_page_number" field was cleared in this mutation.
func (m *DocumentImageMutation) PrintedPageNumberCleared() bool {
	_, ok := m.clearedFields[documentimage.FieldPrintedPageNumber]
	return ok
}

// ResetPrintedPageNumber resets all changes to the "printed_page_number" field.
func (m *DocumentImageMutation) ResetPrintedPageNumber() {
	m.printed_page_number = nil
	m.addprinted_page_number = nil
	delete(m.clearedFields, documentimage.FieldPrintedPageNumber)
}

// SetXref sets the "xref" field.
func (m *DocumentImageMutation) SetXref(i int) {
	m.xref = &i
	m.addxref = nil
}

// Xref returns the value of the "xref" field in the mutation.
func (m *DocumentImageMutation) Xref() (r int, exists bool) {
	v := m.xref
	if v == nil {
		return
	}
	return *v, true
}

// OldXref returns the old "xref" field's value of the DocumentImage entity.
// If the DocumentImage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentImageMutation) OldXref(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldXref is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldXref requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldXref: %w", err)
	}
	return oldValue.Xref, nil
}

// AddXref adds i to the "xref" field.
func (m *DocumentImageMutation) AddXref(i int) {
	if m.addxref != nil {
		*m.addxref += i
	} else {
		m.addxref = &i
	}
}

// AddedXref returns the value that was added to the "xref" field in this mutation.
func (m *DocumentImageMutation) AddedXref() (r int, exists bool) {
	v := m.addxref
	if v == nil {
		return
	}
	return *v, true
}

// ResetXref resets all changes to the "xref" field.
func (m *DocumentImageMutation) ResetXref() {
	m.xref = nil
	m.addxref = nil
}

// SetFilePath sets the "file_path" field.
func (m *DocumentImageMutation) SetFilePath(s string) {
	m.file_path = &s
}

// FilePath returns the value of the "file_path" field in the mutation.
func (m *DocumentImageMutation) FilePath() (r string, exists bool) {
	v := m.file_path
	if v == nil {
		return
	}
	return *v, true
}

// OldFilePath returns the old "file_path" field's value of the DocumentImage entity.
// If the DocumentImage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentImageMutation) OldFilePath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilePath: %w", err)
	}
	return oldValue.FilePath, nil
}

// ResetFilePath resets all changes to the "file_path" field.
func (m *DocumentImageMutation) ResetFilePath() {
	m.file_path = nil
}

// SetWidth sets the "width" field.
func (m *DocumentImageMutation) SetWidth(i int) {
	m.width = &i
	m.addwidth = nil
}

// Width returns the value of the "width" field in the mutation.
func (m *DocumentImageMutation) Width() (r int, exists bool) {
	v := m.width
	if v == nil {
		return
	}
	return *v, true
}

// OldWidth returns the old "width" field's value of the DocumentImage entity.
// If the DocumentImage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentImageMutation) OldWidth(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWidth is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWidth requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWidth: %w", err)
	}
	return oldValue.Width, nil
}

// AddWidth adds i to the "width" field.
func (m *DocumentImageMutation) AddWidth(i int) {
	if m.addwidth != nil {
		*m.addwidth += i
	} else {
		m.addwidth = &i
	}
}

// AddedWidth returns the value that was added to the "width" field in this mutation.
func (m *DocumentImageMutation) AddedWidth() (r int, exists bool) {
	v := m.addwidth
	if v == nil {
		return
	}
	return *v, true
}

// ResetWidth resets all changes to the "width" field.
func (m *DocumentImageMutation) ResetWidth() {
	m.width = nil
	m.addwidth = nil
}

// SetHeight sets the "height" field.
func (m *DocumentImageMutation) SetHeight(i int) {
	m.height = &i
	m.addheight = nil
}

// Height returns the value of the "height" field in the mutation.
func (m *DocumentImageMutation) Height() (r int, exists bool) {
	v := m.height
	if v == nil {
		return
	}
	return *v, true
}

// OldHeight returns the old "height" field's value of the DocumentImage entity.
// If the DocumentImage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentImageMutation) OldHeight(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHeight is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHeight requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHeight: %w", err)
	}
	return oldValue.Height, nil
}

// AddHeight adds i to the "height" field.
func (m *DocumentImageMutation) AddHeight(i int) {
	if m.addheight != nil {
		*m.addheight += i
	} else {
		m.addheight = &i
	}
}

// AddedHeight returns the value that was added to the "height" field in this mutation.
func (m *DocumentImageMutation) AddedHeight() (r int, exists bool) {
	v := m.addheight
	if v == nil {
		return
	}
	return *v, true
}

// ResetHeight resets all changes to the "height" field.
func (m *DocumentImageMutation) ResetHeight() {
	m.height = nil
	m.addheight = nil
}

// SetFormat sets the "format" field.
func (m *DocumentImageMutation) SetFormat(s string) {
	m.format = &s
}

// Format returns the value of the "format" field in the mutation.
func (m *DocumentImageMutation) Format() (r string, exists bool) {
	v := m.format
	if v == nil {
		return
	}
	return *v, true
}

// OldFormat returns the old "format" field's value of the DocumentImage entity.
// If the DocumentImage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentImageMutation) OldFormat(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFormat is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFormat requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFormat: %w", err)
	}
	return oldValue.Format, nil
}

// ResetFormat resets all changes to the "format" field.
func (m *DocumentImageMutation) ResetFormat() {
	m.format = nil
}

// SetColorspace sets the "colorspace" field.
func (m *DocumentImageMutation) SetColorspace(s string) {
	m.colorspace = &s
}

// Colorspace returns the value of the "colorspace" field in the mutation.
func (m *DocumentImageMutation) Colorspace() (r string, exists bool) {
	v := m.colorspace
	if v == nil {
		return
	}
	return *v, true
}

// OldColorspace returns the old "colorspace" field's value of the DocumentImage entity.
// If the DocumentImage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentImageMutation) OldColorspace(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldColorspace is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldColorspace requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldColorspace: %w", err)
	}
	return oldValue.Colorspace, nil
}

// ClearColorspace clears the value of the "colorspace" field.
func (m *DocumentImageMutation) ClearColorspace() {
	m.colorspace = nil
	m.clearedFields[documentimage.FieldColorspace] = struct{}{}
}

// ColorspaceCleared returns if the "colorspace" field was cleared in this mutation.
func (m *DocumentImageMutation) ColorspaceCleared() bool {
	_, ok := m.clearedFields[documentimage.FieldColorspace]
	return ok
}

// ResetColorspace resets all changes to the "colorspace" field.
func (m *DocumentImageMutation) ResetColorspace() {
	m.colorspace = nil
	delete(m.clearedFields, documentimage.FieldColorspace)
}

// SetHasTransparency sets the "has_transparency" field.
func (m *DocumentImageMutation) SetHasTransparency(b bool) {
	m.has_transparency = &b
}

// HasTransparency returns the value of the "has_transparency" field in the mutation.
func (m *DocumentImageMutation) HasTransparency() (r bool, exists bool) {
	v := m.has_transparency
	if v == nil {
		return
	}
	return *v, true
}

// OldHasTransparency returns the old "has_transparency" field's value of the DocumentImage entity.
// If the DocumentImage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentImageMutation) OldHasTransparency(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHasTransparency is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHasTransparency requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHasTransparency: %w", err)
	}
	return oldValue.HasTransparency, nil
}

// ResetHasTransparency resets all changes to the "has_transparency" field.
func (m *DocumentImageMutation) ResetHasTransparency() {
	m.has_transparency = nil
}

// SetFileSize sets the "file_size" field.
func (m *DocumentImageMutation) SetFileSize(i int) {
	m.file_size = &i
	m.addfile_size = nil
}

// FileSize returns the value of the "file_size" field in the mutation.
func (m *DocumentImageMutation) FileSize() (r int, exists bool) {
	v := m.file_size
	if v == nil {
		return
	}
	return *v, true
}

// OldFileSize returns the old "file_size" field's value of the DocumentImage entity.
// If the DocumentImage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentImageMutation) OldFileSize(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileSize is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileSize requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileSize: %w", err)
	}
	return oldValue.FileSize, nil
}

// AddFileSize adds i to the "file_size" field.
func (m *DocumentImageMutation) AddFileSize(i int) {
	if m.addfile_size != nil {
		*m.addfile_size += i
	} else {
		m.addfile_size = &i
	}
}

// AddedFileSize returns the value that was added to the "file_size" field in this mutation.
func (m *DocumentImageMutation) AddedFileSize() (r int, exists bool) {
	v := m.addfile_size
	if v == nil {
		return
	}
	return *v, true
}

// ClearFileSize clears the value of the "file_size" field.
func (m *DocumentImageMutation) ClearFileSize() {
	m.file_size = nil
	m.addfile_size = nil
	m.clearedFields[documentimage.FieldFileSize] = struct{}{}
}

// FileSizeCleared returns if the "file_size" field was cleared in this mutation.
func (m *DocumentImageMutation) FileSizeCleared() bool {
	_, ok := m.clearedFields[documentimage.FieldFileSize]
	return ok
}

// ResetFileSize resets all changes to the "file_size" field.
func (m *DocumentImageMutation) ResetFileSize() {
	m.file_size = nil
	m.addfile_size = nil
	delete(m.clearedFields, documentimage.FieldFileSize)
}

// SetCreatedAt sets the "created_at" field.
func (m *DocumentImageMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DocumentImageMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the DocumentImage entity.
// If the DocumentImage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentImageMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DocumentImageMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearDocument clears the "document" edge to the Document entity.
func (m *DocumentImageMutation) ClearDocument() {
	m.cleareddocument = true
	m.clearedFields[documentimage.FieldDocumentID] = struct{}{}
}

// DocumentCleared reports if the "document" edge to the Document entity was cleared.
func (m *DocumentImageMutation) DocumentCleared() bool {
	return m.cleareddocument
}

// DocumentIDs returns the "document" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DocumentID instead. It exists only for internal usage by the builders.
func (m *DocumentImageMutation) DocumentIDs() (ids []int) {
	if id := m.document; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDocument resets all changes to the "document" edge.
func (m *DocumentImageMutation) ResetDocument() {
	m.document = nil
	m.cleareddocument = false
}

// Where appends a list predicates to the DocumentImageMutation builder.
func (m *DocumentImageMutation) Where(ps ...predicate.DocumentImage) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DocumentImageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DocumentImageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DocumentImage, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DocumentImageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DocumentImageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DocumentImage).
func (m *DocumentImageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DocumentImageMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.document != nil {
		fields = append(fields, documentimage.FieldDocumentID)
	}
	if m.page_number != nil {
		fields = append(fields, documentimage.FieldPageNumber)
	}
	if m.printed_page_number != nil {
		fields = append(fields, documentimage.FieldPrintedPageNumber)
	}
	if m.xref != nil {
		fields = append(fields, documentimage.FieldXref)
	}
	if m.file_path != nil {
		fields = append(fields, documentimage.FieldFilePath)
	}
	if m.width != nil {
		fields = append(fields, documentimage.FieldWidth)
	}
	if m.height != nil {
		fields = append(fields, documentimage.FieldHeight)
	}
	if m.format != nil {
		fields = append(fields, documentimage.FieldFormat)
	}
	if m.colorspace != nil {
		fields = append(fields, documentimage.FieldColorspace)
	}
	if m.has_transparency != nil {
		fields = append(fields, documentimage.FieldHasTransparency)
	}
	if m.file_size != nil {
		fields = append(fields, documentimage.FieldFileSize)
	}
	if m.created_at != nil {
		fields = append(fields, documentimage.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DocumentImageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case documentimage.FieldDocumentID:
		return m.DocumentID()
	case documentimage.FieldPageNumber:
		return m.PageNumber()
	case documentimage.FieldPrintedPageNumber:
		return m.PrintedPageNumber()
	case documentimage.FieldXref:
		return m.Xref()
	case documentimage.FieldFilePath:
		return m.FilePath()
	case documentimage.FieldWidth:
		return m.Width()
	case documentimage.FieldHeight:
		return m.Height()
	case documentimage.FieldFormat:
		return m.Format()
	case documentimage.FieldColorspace:
		return m.Colorspace()
	case documentimage.FieldHasTransparency:
		return m.HasTransparency()
	case documentimage.FieldFileSize:
		return m.FileSize()
	case documentimage.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DocumentImageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case documentimage.FieldDocumentID:
		return m.OldDocumentID(ctx)
	case documentimage.FieldPageNumber:
		return m.OldPageNumber(ctx)
	case documentimage.FieldPrintedPageNumber:
		return m.OldPrintedPageNumber(ctx)
	case documentimage.FieldXref:
		return m.OldXref(ctx)
	case documentimage.FieldFilePath:
		return m.OldFilePath(ctx)
	case documentimage.FieldWidth:
		return m.OldWidth(ctx)
	case documentimage.FieldHeight:
		return m.OldHeight(ctx)
	case documentimage.FieldFormat:
		return m.OldFormat(ctx)
	case documentimage.FieldColorspace:
		return m.OldColorspace(ctx)
	case documentimage.FieldHasTransparency:
		return m.OldHasTransparency(ctx)
	case documentimage.FieldFileSize:
		return m.OldFileSize(ctx)
	case documentimage.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown DocumentImage field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentImageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case documentimage.FieldDocumentID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentID(v)
		return nil
	case documentimage.FieldPageNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPageNumber(v)
		return nil
	case documentimage.FieldPrintedPageNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrintedPageNumber(v)
		return nil
	case documentimage.FieldXref:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetXref(v)
		return nil
	case documentimage.FieldFilePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilePath(v)
		return nil
	case documentimage.FieldWidth:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWidth(v)
		return nil
	case documentimage.FieldHeight:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHeight(v)
		return nil
	case documentimage.FieldFormat:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFormat(v)
		return nil
	case documentimage.FieldColorspace:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetColorspace(v)
		return nil
	case documentimage.FieldHasTransparency:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHasTransparency(v)
		return nil
	case documentimage.FieldFileSize:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileSize(v)
		return nil
	case documentimage.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown DocumentImage field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DocumentImageMutation) AddedFields() []string {
	var fields []string
	if m.addpage_number != nil {
		fields = append(fields, documentimage.FieldPageNumber)
	}
	if m.addprinted_page_number != nil {
		fields = append(fields, documentimage.FieldPrintedPageNumber)
	}
	if m.addxref != nil {
		fields = append(fields, documentimage.FieldXref)
	}
	if m.addwidth != nil {
		fields = append(fields, documentimage.FieldWidth)
	}
	if m.addheight != nil {
		fields = append(fields, documentimage.FieldHeight)
	}
	if m.addfile_size != nil {
		fields = append(fields, documentimage.FieldFileSize)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DocumentImageMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case documentimage.FieldPageNumber:
		return m.AddedPageNumber()
	case documentimage.FieldPrintedPageNumber:
		return m.AddedPrintedPageNumber()
	case documentimage.FieldXref:
		return m.AddedXref()
	case documentimage.FieldWidth:
		return m.AddedWidth()
	case documentimage.FieldHeight:
		return m.AddedHeight()
	case documentimage.FieldFileSize:
		return m.AddedFileSize()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentImageMutation) AddField(name string, value ent.Value) error {
	switch name {
	case documentimage.FieldPageNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPageNumber(v)
		return nil
	case documentimage.FieldPrintedPageNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPrintedPageNumber(v)
		return nil
	case documentimage.FieldXref:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddXref(v)
		return nil
	case documentimage.FieldWidth:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWidth(v)
		return nil
	case documentimage.FieldHeight:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddHeight(v)
		return nil
	case documentimage.FieldFileSize:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFileSize(v)
		return nil
	}
	return fmt.Errorf("unknown DocumentImage numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DocumentImageMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(documentimage.FieldPrintedPageNumber) {
		fields = append(fields, documentimage.FieldPrintedPageNumber)
	}
	if m.FieldCleared(documentimage.FieldColorspace) {
		fields = append(fields, documentimage.FieldColorspace)
	}
	if m.FieldCleared(documentimage.FieldFileSize) {
		fields = append(fields, documentimage.FieldFileSize)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DocumentImageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DocumentImageMutation) ClearField(name string) error {
	switch name {
	case documentimage.FieldPrintedPageNumber:
		m.ClearPrintedPageNumber()
		return nil
	case documentimage.FieldColorspace:
		m.ClearColorspace()
		return nil
	case documentimage.FieldFileSize:
		m.ClearFileSize()
		return nil
	}
	return fmt.Errorf("unknown DocumentImage nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DocumentImageMutation) ResetField(name string) error {
	switch name {
	case documentimage.FieldDocumentID:
		m.ResetDocumentID()
		return nil
	case documentimage.FieldPageNumber:
		m.ResetPageNumber()
		return nil
	case documentimage.FieldPrintedPageNumber:
		m.ResetPrintedPageNumber()
		return nil
	case documentimage.FieldXref:
		m.ResetXref()
		return nil
	case documentimage.FieldFilePath:
		m.ResetFilePath()
		return nil
	case documentimage.FieldWidth:
		m.ResetWidth()
		return nil
	case documentimage.FieldHeight:
		m.ResetHeight()
		return nil
	case documentimage.FieldFormat:
		m.ResetFormat()
		return nil
	case documentimage.FieldColorspace:
		m.ResetColorspace()
		return nil
	case documentimage.FieldHasTransparency:
		m.ResetHasTransparency()
		return nil
	case documentimage.FieldFileSize:
		m.ResetFileSize()
		return nil
	case documentimage.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown DocumentImage field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DocumentImageMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.document != nil {
		edges = append(edges, documentimage.EdgeDocument)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DocumentImageMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case documentimage.EdgeDocument:
		if id := m.document; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DocumentImageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DocumentImageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DocumentImageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareddocument {
		edges = append(edges, documentimage.EdgeDocument)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DocumentImageMutation) EdgeCleared(name string) bool {
	switch name {
	case documentimage.EdgeDocument:
		return m.cleareddocument
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DocumentImageMutation) ClearEdge(name string) error {
	switch name {
	case documentimage.EdgeDocument:
		m.ClearDocument()
		return nil
	}
	return fmt.Errorf("unknown DocumentImage unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DocumentImageMutation) ResetEdge(name string) error {
	switch name {
	case documentimage.EdgeDocument:
		m.ResetDocument()
		return nil
	}
	return fmt.Errorf("unknown DocumentImage edge %s", name)
}
