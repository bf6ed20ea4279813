// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/candlekeep/candlekeep/gen/ent/document"
	"github.com/candlekeep/candlekeep/gen/ent/documentimage"
	"github.com/candlekeep/candlekeep/gen/ent/predicate"
	"github.com/candlekeep/candlekeep/internal/entity"
)

// DocumentUpdate is the builder for updating Document entities.
type DocumentUpdate struct {
	config
	hooks    []Hook
	mutation *DocumentMutation
}

// Where appends a list predicates to the DocumentUpdate builder.
func (_u *DocumentUpdate) Where(ps ...predicate.Document) *DocumentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *DocumentUpdate) SetTitle(v string) *DocumentUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableTitle(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetAuthor sets the "author" field.
func (_u *DocumentUpdate) SetAuthor(v string) *DocumentUpdate {
	_u.mutation.SetAuthor(v)
	return _u
}

// SetNillableAuthor sets the "author" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableAuthor(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetAuthor(*v)
	}
	return _u
}

// ClearAuthor clears the value of the "author" field.
func (_u *DocumentUpdate) ClearAuthor() *DocumentUpdate {
	_u.mutation.ClearAuthor()
	return _u
}

// SetSourceType sets the "source_type" field.
func (_u *DocumentUpdate) SetSourceType(v string) *DocumentUpdate {
	_u.mutation.SetSourceType(v)
	return _u
}

// SetNillableSourceType sets the "source_type" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableSourceType(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetSourceType(*v)
	}
	return _u
}

// SetContentHash sets the "content_hash" field.
func (_u *DocumentUpdate) SetContentHash(v string) *DocumentUpdate {
	_u.mutation.SetContentHash(v)
	return _u
}

// SetNillableContentHash sets the "content_hash" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableContentHash(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetContentHash(*v)
	}
	return _u
}

// SetMarkdownPath sets the "markdown_path" field.
func (_u *DocumentUpdate) SetMarkdownPath(v string) *DocumentUpdate {
	_u.mutation.SetMarkdownPath(v)
	return _u
}

// SetNillableMarkdownPath sets the "markdown_path" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableMarkdownPath(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetMarkdownPath(*v)
	}
	return _u
}

// SetOriginalPath sets the "original_path" field.
func (_u *DocumentUpdate) SetOriginalPath(v string) *DocumentUpdate {
	_u.mutation.SetOriginalPath(v)
	return _u
}

// SetNillableOriginalPath sets the "original_path" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableOriginalPath(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetOriginalPath(*v)
	}
	return _u
}

// ClearOriginalPath clears the value of the "original_path" field.
func (_u *DocumentUpdate) ClearOriginalPath() *DocumentUpdate {
	_u.mutation.ClearOriginalPath()
	return _u
}

// SetPageCount sets the "page_count" field.
func (_u *DocumentUpdate) SetPageCount(v int) *DocumentUpdate {
	_u.mutation.ResetPageCount()
	_u.mutation.SetPageCount(v)
	return _u
}

// SetNillablePageCount sets the "page_count" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillablePageCount(v *int) *DocumentUpdate {
	if v != nil {
		_u.SetPageCount(*v)
	}
	return _u
}

// AddPageCount adds value to the "page_count" field.
func (_u *DocumentUpdate) AddPageCount(v int) *DocumentUpdate {
	_u.mutation.AddPageCount(v)
	return _u
}

// ClearPageCount clears the value of the "page_count" field.
func (_u *DocumentUpdate) ClearPageCount() *DocumentUpdate {
	_u.mutation.ClearPageCount()
	return _u
}

// SetWordCount sets the "word_count" field.
func (_u *DocumentUpdate) SetWordCount(v int) *DocumentUpdate {
	_u.mutation.ResetWordCount()
	_u.mutation.SetWordCount(v)
	return _u
}

// SetNillableWordCount sets the "word_count" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableWordCount(v *int) *DocumentUpdate {
	if v != nil {
		_u.SetWordCount(*v)
	}
	return _u
}

// AddWordCount adds value to the "word_count" field.
func (_u *DocumentUpdate) AddWordCount(v int) *DocumentUpdate {
	_u.mutation.AddWordCount(v)
	return _u
}

// SetChapterCount sets the "chapter_count" field.
func (_u *DocumentUpdate) SetChapterCount(v int) *DocumentUpdate {
	_u.mutation.ResetChapterCount()
	_u.mutation.SetChapterCount(v)
	return _u
}

// SetNillableChapterCount sets the "chapter_count" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableChapterCount(v *int) *DocumentUpdate {
	if v != nil {
		_u.SetChapterCount(*v)
	}
	return _u
}

// AddChapterCount adds value to the "chapter_count" field.
func (_u *DocumentUpdate) AddChapterCount(v int) *DocumentUpdate {
	_u.mutation.AddChapterCount(v)
	return _u
}

// SetTableOfContents sets the "table_of_contents" field.
func (_u *DocumentUpdate) SetTableOfContents(v []entity.TOCEntry) *DocumentUpdate {
	_u.mutation.SetTableOfContents(v)
	return _u
}

// AppendTableOfContents appends value to the "table_of_contents" field.
func (_u *DocumentUpdate) AppendTableOfContents(v []entity.TOCEntry) *DocumentUpdate {
	_u.mutation.AppendTableOfContents(v)
	return _u
}

// ClearTableOfContents clears the value of the "table_of_contents" field.
func (_u *DocumentUpdate) ClearTableOfContents() *DocumentUpdate {
	_u.mutation.ClearTableOfContents()
	return _u
}

// SetSubject sets the "subject" field.
func (_u *DocumentUpdate) SetSubject(v string) *DocumentUpdate {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableSubject(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// ClearSubject clears the value of the "subject" field.
func (_u *DocumentUpdate) ClearSubject() *DocumentUpdate {
	_u.mutation.ClearSubject()
	return _u
}

// SetKeywords sets the "keywords" field.
func (_u *DocumentUpdate) SetKeywords(v string) *DocumentUpdate {
	_u.mutation.SetKeywords(v)
	return _u
}

// SetNillableKeywords sets the "keywords" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableKeywords(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetKeywords(*v)
	}
	return _u
}

// ClearKeywords clears the value of the "keywords" field.
func (_u *DocumentUpdate) ClearKeywords() *DocumentUpdate {
	_u.mutation.ClearKeywords()
	return _u
}

// SetCategory sets the "category" field.
func (_u *DocumentUpdate) SetCategory(v string) *DocumentUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableCategory(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// ClearCategory clears the value of the "category" field.
func (_u *DocumentUpdate) ClearCategory() *DocumentUpdate {
	_u.mutation.ClearCategory()
	return _u
}

// SetTags sets the "tags" field.
func (_u *DocumentUpdate) SetTags(v []string) *DocumentUpdate {
	_u.mutation.SetTags(v)
	return _u
}

// AppendTags appends value to the "tags" field.
func (_u *DocumentUpdate) AppendTags(v []string) *DocumentUpdate {
	_u.mutation.AppendTags(v)
	return _u
}

// ClearTags clears the value of the "tags" field.
func (_u *DocumentUpdate) ClearTags() *DocumentUpdate {
	_u.mutation.ClearTags()
	return _u
}

// SetPdfCreationDate sets the "pdf_creation_date" field.
func (_u *DocumentUpdate) SetPdfCreationDate(v time.Time) *DocumentUpdate {
	_u.mutation.SetPdfCreationDate(v)
	return _u
}

// SetNillablePdfCreationDate sets the "pdf_creation_date" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillablePdfCreationDate(v *time.Time) *DocumentUpdate {
	if v != nil {
		_u.SetPdfCreationDate(*v)
	}
	return _u
}

// ClearPdfCreationDate clears the value of the "pdf_creation_date" field.
func (_u *DocumentUpdate) ClearPdfCreationDate() *DocumentUpdate {
	_u.mutation.ClearPdfCreationDate()
	return _u
}

// SetPdfModDate sets the "pdf_mod_date" field.
func (_u *DocumentUpdate) SetPdfModDate(v time.Time) *DocumentUpdate {
	_u.mutation.SetPdfModDate(v)
	return _u
}

// SetNillablePdfModDate sets the "pdf_mod_date" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillablePdfModDate(v *time.Time) *DocumentUpdate {
	if v != nil {
		_u.SetPdfModDate(*v)
	}
	return _u
}

// ClearPdfModDate clears the value of the "pdf_mod_date" field.
func (_u *DocumentUpdate) ClearPdfModDate() *DocumentUpdate {
	_u.mutation.ClearPdfModDate()
	return _u
}

// SetPdfCreator sets the "pdf_creator" field.
func (_u *DocumentUpdate) SetPdfCreator(v string) *DocumentUpdate {
	_u.mutation.SetPdfCreator(v)
	return _u
}

// SetNillablePdfCreator sets the "pdf_creator" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillablePdfCreator(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetPdfCreator(*v)
	}
	return _u
}

// ClearPdfCreator clears the value of the "pdf_creator" field.
func (_u *DocumentUpdate) ClearPdfCreator() *DocumentUpdate {
	_u.mutation.ClearPdfCreator()
	return _u
}

// SetPdfProducer sets the "pdf_producer" field.
func (_u *DocumentUpdate) SetPdfProducer(v string) *DocumentUpdate {
	_u.mutation.SetPdfProducer(v)
	return _u
}

// SetNillablePdfProducer sets the "pdf_producer" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillablePdfProducer(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetPdfProducer(*v)
	}
	return _u
}

// ClearPdfProducer clears the value of the "pdf_producer" field.
func (_u *DocumentUpdate) ClearPdfProducer() *DocumentUpdate {
	_u.mutation.ClearPdfProducer()
	return _u
}

// SetIsbn sets the "isbn" field.
func (_u *DocumentUpdate) SetIsbn(v string) *DocumentUpdate {
	_u.mutation.SetIsbn(v)
	return _u
}

// SetNillableIsbn sets the "isbn" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableIsbn(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetIsbn(*v)
	}
	return _u
}

// ClearIsbn clears the value of the "isbn" field.
func (_u *DocumentUpdate) ClearIsbn() *DocumentUpdate {
	_u.mutation.ClearIsbn()
	return _u
}

// SetPublisher sets the "publisher" field.
func (_u *DocumentUpdate) SetPublisher(v string) *DocumentUpdate {
	_u.mutation.SetPublisher(v)
	return _u
}

// SetNillablePublisher sets the "publisher" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillablePublisher(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetPublisher(*v)
	}
	return _u
}

// ClearPublisher clears the value of the "publisher" field.
func (_u *DocumentUpdate) ClearPublisher() *DocumentUpdate {
	_u.mutation.ClearPublisher()
	return _u
}

// SetPublicationYear sets the "publication_year" field.
func (_u *DocumentUpdate) SetPublicationYear(v int) *DocumentUpdate {
	_u.mutation.ResetPublicationYear()
	_u.mutation.SetPublicationYear(v)
	return _u
}

// SetNillablePublicationYear sets the "publication_year" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillablePublicationYear(v *int) *DocumentUpdate {
	if v != nil {
		_u.SetPublicationYear(*v)
	}
	return _u
}

// AddPublicationYear adds value to the "publication_year" field.
func (_u *DocumentUpdate) AddPublicationYear(v int) *DocumentUpdate {
	_u.mutation.AddPublicationYear(v)
	return _u
}

// ClearPublicationYear clears the value of the "publication_year" field.
func (_u *DocumentUpdate) ClearPublicationYear() *DocumentUpdate {
	_u.mutation.ClearPublicationYear()
	return _u
}

// SetLanguage sets the "language" field.
func (_u *DocumentUpdate) SetLanguage(v string) *DocumentUpdate {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableLanguage(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// SetImageCount sets the "image_count" field.
func (_u *DocumentUpdate) SetImageCount(v int) *DocumentUpdate {
	_u.mutation.ResetImageCount()
	_u.mutation.SetImageCount(v)
	return _u
}

// SetNillableImageCount sets the "image_count" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableImageCount(v *int) *DocumentUpdate {
	if v != nil {
		_u.SetImageCount(*v)
	}
	return _u
}

// AddImageCount adds value to the "image_count" field.
func (_u *DocumentUpdate) AddImageCount(v int) *DocumentUpdate {
	_u.mutation.AddImageCount(v)
	return _u
}

// SetHasImages sets the "has_images" field.
func (_u *DocumentUpdate) SetHasImages(v bool) *DocumentUpdate {
	_u.mutation.SetHasImages(v)
	return _u
}

// SetNillableHasImages sets the "has_images" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableHasImages(v *bool) *DocumentUpdate {
	if v != nil {
		_u.SetHasImages(*v)
	}
	return _u
}

// SetModifiedAt sets the "modified_at" field.
func (_u *DocumentUpdate) SetModifiedAt(v time.Time) *DocumentUpdate {
	_u.mutation.SetModifiedAt(v)
	return _u
}

// AddAttachmentIDs adds the "attachments" edge to the DocumentImage entity by IDs.
func (_u *DocumentUpdate) AddAttachmentIDs(ids ...int) *DocumentUpdate {
	_u.mutation.AddAttachmentIDs(ids...)
	return _u
}

// AddAttachments adds the "attachments" edges to the DocumentImage entity.
func (_u *DocumentUpdate) AddAttachments(v ...*DocumentImage) *DocumentUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAttachmentIDs(ids...)
}

// Mutation returns the DocumentMutation object of the builder.
func (_u *DocumentUpdate) Mutation() *DocumentMutation {
	return _u.mutation
}

// ClearAttachments clears all "attachments" edges to the DocumentImage entity.
func (_u *DocumentUpdate) ClearAttachments() *DocumentUpdate {
	_u.mutation.ClearAttachments()
	return _u
}

// RemoveAttachmentIDs removes the "attachments" edge to DocumentImage entities by IDs.
func (_u *DocumentUpdate) RemoveAttachmentIDs(ids ...int) *DocumentUpdate {
	_u.mutation.RemoveAttachmentIDs(ids...)
	return _u
}

// RemoveAttachments removes "attachments" edges to DocumentImage entities.
func (_u *DocumentUpdate) RemoveAttachments(v ...*DocumentImage) *DocumentUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAttachmentIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DocumentUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DocumentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DocumentUpdate) defaults() {
	if _, ok := _u.mutation.ModifiedAt(); !ok {
		v := document.UpdateDefaultModifiedAt()
		_u.mutation.SetModifiedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocumentUpdate) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := document.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Document.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Author(); ok {
		if err := document.AuthorValidator(v); err != nil {
			return &ValidationError{Name: "author", err: fmt.Errorf(`ent: validator failed for field "Document.author": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SourceType(); ok {
		if err := document.SourceTypeValidator(v); err != nil {
			return &ValidationError{Name: "source_type", err: fmt.Errorf(`ent: validator failed for field "Document.source_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContentHash(); ok {
		if err := document.ContentHashValidator(v); err != nil {
			return &ValidationError{Name: "content_hash", err: fmt.Errorf(`ent: validator failed for field "Document.content_hash": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MarkdownPath(); ok {
		if err := document.MarkdownPathValidator(v); err != nil {
			return &ValidationError{Name: "markdown_path", err: fmt.Errorf(`ent: validator failed for field "Document.markdown_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OriginalPath(); ok {
		if err := document.OriginalPathValidator(v); err != nil {
			return &ValidationError{Name: "original_path", err: fmt.Errorf(`ent: validator failed for field "Document.original_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Subject(); ok {
		if err := document.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "Document.subject": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := document.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "Document.category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PdfCreator(); ok {
		if err := document.PdfCreatorValidator(v); err != nil {
			return &ValidationError{Name: "pdf_creator", err: fmt.Errorf(`ent: validator failed for field "Document.pdf_creator": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PdfProducer(); ok {
		if err := document.PdfProducerValidator(v); err != nil {
			return &ValidationError{Name: "pdf_producer", err: fmt.Errorf(`ent: validator failed for field "Document.pdf_producer": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Isbn(); ok {
		if err := document.IsbnValidator(v); err != nil {
			return &ValidationError{Name: "isbn", err: fmt.Errorf(`ent: validator failed for field "Document.isbn": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Publisher(); ok {
		if err := document.PublisherValidator(v); err != nil {
			return &ValidationError{Name: "publisher", err: fmt.Errorf(`ent: validator failed for field "Document.publisher": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Language(); ok {
		if err := document.LanguageValidator(v); err != nil {
			return &ValidationError{Name: "language", err: fmt.Errorf(`ent: validator failed for field "Document.language": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ImageCount(); ok {
		if err := document.ImageCountValidator(v); err != nil {
			return &ValidationError{Name: "image_count", err: fmt.Errorf(`ent: validator failed for field "Document.image_count": %w`, err)}
		}
	}
	return nil
}

func (_u *DocumentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(document.Table, document.Columns, sqlgraph.NewFieldSpec(document.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(document.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Author(); ok {
		_spec.SetField(document.FieldAuthor, field.TypeString, value)
	}
	if _u.mutation.AuthorCleared() {
		_spec.ClearField(document.FieldAuthor, field.TypeString)
	}
	if value, ok := _u.mutation.SourceType(); ok {
		_spec.SetField(document.FieldSourceType, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContentHash(); ok {
		_spec.SetField(document.FieldContentHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.MarkdownPath(); ok {
		_spec.SetField(document.FieldMarkdownPath, field.TypeString, value)
	}
	if value, ok := _u.mutation.OriginalPath(); ok {
		_spec.SetField(document.FieldOriginalPath, field.TypeString, value)
	}
	if _u.mutation.OriginalPathCleared() {
		_spec.ClearField(document.FieldOriginalPath, field.TypeString)
	}
	if value, ok := _u.mutation.PageCount(); ok {
		_spec.SetField(document.FieldPageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPageCount(); ok {
		_spec.AddField(document.FieldPageCount, field.TypeInt, value)
	}
	if _u.mutation.PageCountCleared() {
		_spec.ClearField(document.FieldPageCount, field.TypeInt)
	}
	if value, ok := _u.mutation.WordCount(); ok {
		_spec.SetField(document.FieldWordCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWordCount(); ok {
		_spec.AddField(document.FieldWordCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ChapterCount(); ok {
		_spec.SetField(document.FieldChapterCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedChapterCount(); ok {
		_spec.AddField(document.FieldChapterCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TableOfContents(); ok {
		_spec.SetField(document.FieldTableOfContents, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTableOfContents(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, document.FieldTableOfContents, value)
		})
	}
	if _u.mutation.TableOfContentsCleared() {
		_spec.ClearField(document.FieldTableOfContents, field.TypeJSON)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(document.FieldSubject, field.TypeString, value)
	}
	if _u.mutation.SubjectCleared() {
		_spec.ClearField(document.FieldSubject, field.TypeString)
	}
	if value, ok := _u.mutation.Keywords(); ok {
		_spec.SetField(document.FieldKeywords, field.TypeString, value)
	}
	if _u.mutation.KeywordsCleared() {
		_spec.ClearField(document.FieldKeywords, field.TypeString)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(document.FieldCategory, field.TypeString, value)
	}
	if _u.mutation.CategoryCleared() {
		_spec.ClearField(document.FieldCategory, field.TypeString)
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(document.FieldTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, document.FieldTags, value)
		})
	}
	if _u.mutation.TagsCleared() {
		_spec.ClearField(document.FieldTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.PdfCreationDate(); ok {
		_spec.SetField(document.FieldPdfCreationDate, field.TypeTime, value)
	}
	if _u.mutation.PdfCreationDateCleared() {
		_spec.ClearField(document.FieldPdfCreationDate, field.TypeTime)
	}
	if value, ok := _u.mutation.PdfModDate(); ok {
		_spec.SetField(document.FieldPdfModDate, field.TypeTime, value)
	}
	if _u.mutation.PdfModDateCleared() {
		_spec.ClearField(document.FieldPdfModDate, field.TypeTime)
	}
	if value, ok := _u.mutation.PdfCreator(); ok {
		_spec.SetField(document.FieldPdfCreator, field.TypeString, value)
	}
	if _u.mutation.PdfCreatorCleared() {
		_spec.ClearField(document.FieldPdfCreator, field.TypeString)
	}
	if value, ok := _u.mutation.PdfProducer(); ok {
		_spec.SetField(document.FieldPdfProducer, field.TypeString, value)
	}
	if _u.mutation.PdfProducerCleared() {
		_spec.ClearField(document.FieldPdfProducer, field.TypeString)
	}
	if value, ok := _u.mutation.Isbn(); ok {
		_spec.SetField(document.FieldIsbn, field.TypeString, value)
	}
	if _u.mutation.IsbnCleared() {
		_spec.ClearField(document.FieldIsbn, field.TypeString)
	}
	if value, ok := _u.mutation.Publisher(); ok {
		_spec.SetField(document.FieldPublisher, field.TypeString, value)
	}
	if _u.mutation.PublisherCleared() {
		_spec.ClearField(document.FieldPublisher, field.TypeString)
	}
	if value, ok := _u.mutation.PublicationYear(); ok {
		_spec.SetField(document.FieldPublicationYear, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPublicationYear(); ok {
		_spec.AddField(document.FieldPublicationYear, field.TypeInt, value)
	}
	if _u.mutation.PublicationYearCleared() {
		_spec.ClearField(document.FieldPublicationYear, field.TypeInt)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(document.FieldLanguage, field.TypeString, value)
	}
	if value, ok := _u.mutation.ImageCount(); ok {
		_spec.SetField(document.FieldImageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedImageCount(); ok {
		_spec.AddField(document.FieldImageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.HasImages(); ok {
		_spec.SetField(document.FieldHasImages, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ModifiedAt(); ok {
		_spec.SetField(document.FieldModifiedAt, field.TypeTime, value)
	}
	if _u.mutation.AttachmentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.AttachmentsTable,
			Columns: []string{document.AttachmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(documentimage.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAttachmentsIDs(); len(nodes) > 0 && !_u.mutation.AttachmentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.AttachmentsTable,
			Columns: []string{document.AttachmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(documentimage.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AttachmentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.AttachmentsTable,
			Columns: []string{document.AttachmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(documentimage.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{document.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DocumentUpdateOne is the builder for updating a single Document entity.
type DocumentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DocumentMutation
}

// SetTitle sets the "title" field.
func (_u *DocumentUpdateOne) SetTitle(v string) *DocumentUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableTitle(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetAuthor sets the "author" field.
func (_u *DocumentUpdateOne) SetAuthor(v string) *DocumentUpdateOne {
	_u.mutation.SetAuthor(v)
	return _u
}

// SetNillableAuthor sets the "author" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableAuthor(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetAuthor(*v)
	}
	return _u
}

// ClearAuthor clears the value of the "author" field.
func (_u *DocumentUpdateOne) ClearAuthor() *DocumentUpdateOne {
	_u.mutation.ClearAuthor()
	return _u
}

// SetSourceType sets the "source_type" field.
func (_u *DocumentUpdateOne) SetSourceType(v string) *DocumentUpdateOne {
	_u.mutation.SetSourceType(v)
	return _u
}

// SetNillableSourceType sets the "source_type" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableSourceType(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetSourceType(*v)
	}
	return _u
}

// SetContentHash sets the "content_hash" field.
func (_u *DocumentUpdateOne) SetContentHash(v string) *DocumentUpdateOne {
	_u.mutation.SetContentHash(v)
	return _u
}

// SetNillableContentHash sets the "content_hash" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableContentHash(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetContentHash(*v)
	}
	return _u
}

// SetMarkdownPath sets the "markdown_path" field.
func (_u *DocumentUpdateOne) SetMarkdownPath(v string) *DocumentUpdateOne {
	_u.mutation.SetMarkdownPath(v)
	return _u
}

// SetNillableMarkdownPath sets the "markdown_path" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableMarkdownPath(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetMarkdownPath(*v)
	}
	return _u
}

// SetOriginalPath sets the "original_path" field.
func (_u *DocumentUpdateOne) SetOriginalPath(v string) *DocumentUpdateOne {
	_u.mutation.SetOriginalPath(v)
	return _u
}

// SetNillableOriginalPath sets the "original_path" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableOriginalPath(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetOriginalPath(*v)
	}
	return _u
}

// ClearOriginalPath clears the value of the "original_path" field.
func (_u *DocumentUpdateOne) ClearOriginalPath() *DocumentUpdateOne {
	_u.mutation.ClearOriginalPath()
	return _u
}

// SetPageCount sets the "page_count" field.
func (_u *DocumentUpdateOne) SetPageCount(v int) *DocumentUpdateOne {
	_u.mutation.ResetPageCount()
	_u.mutation.SetPageCount(v)
	return _u
}

// SetNillablePageCount sets the "page_count" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillablePageCount(v *int) *DocumentUpdateOne {
	if v != nil {
		_u.SetPageCount(*v)
	}
	return _u
}

// AddPageCount adds value to the "page_count" field.
func (_u *DocumentUpdateOne) AddPageCount(v int) *DocumentUpdateOne {
	_u.mutation.AddPageCount(v)
	return _u
}

// ClearPageCount clears the value of the "page_count" field.
func (_u *DocumentUpdateOne) ClearPageCount() *DocumentUpdateOne {
	_u.mutation.ClearPageCount()
	return _u
}

// SetWordCount sets the "word_count" field.
func (_u *DocumentUpdateOne) SetWordCount(v int) *DocumentUpdateOne {
	_u.mutation.ResetWordCount()
	_u.mutation.SetWordCount(v)
	return _u
}

// SetNillableWordCount sets the "word_count" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableWordCount(v *int) *DocumentUpdateOne {
	if v != nil {
		_u.SetWordCount(*v)
	}
	return _u
}

// AddWordCount adds value to the "word_count" field.
func (_u *DocumentUpdateOne) AddWordCount(v int) *DocumentUpdateOne {
	_u.mutation.AddWordCount(v)
	return _u
}

// SetChapterCount sets the "chapter_count" field.
func (_u *DocumentUpdateOne) SetChapterCount(v int) *DocumentUpdateOne {
	_u.mutation.ResetChapterCount()
	_u.mutation.SetChapterCount(v)
	return _u
}

// SetNillableChapterCount sets the "chapter_count" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableChapterCount(v *int) *DocumentUpdateOne {
	if v != nil {
		_u.SetChapterCount(*v)
	}
	return _u
}

// AddChapterCount adds value to the "chapter_count" field.
func (_u *DocumentUpdateOne) AddChapterCount(v int) *DocumentUpdateOne {
	_u.mutation.AddChapterCount(v)
	return _u
}

// SetTableOfContents sets the "table_of_contents" field.
func (_u *DocumentUpdateOne) SetTableOfContents(v []entity.TOCEntry) *DocumentUpdateOne {
	_u.mutation.SetTableOfContents(v)
	return _u
}

// AppendTableOfContents appends value to the "table_of_contents" field.
func (_u *DocumentUpdateOne) AppendTableOfContents(v []entity.TOCEntry) *DocumentUpdateOne {
	_u.mutation.AppendTableOfContents(v)
	return _u
}

// ClearTableOfContents clears the value of the "table_of_contents" field.
func (_u *DocumentUpdateOne) ClearTableOfContents() *DocumentUpdateOne {
	_u.mutation.ClearTableOfContents()
	return _u
}

// SetSubject sets the "subject" field.
func (_u *DocumentUpdateOne) SetSubject(v string) *DocumentUpdateOne {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableSubject(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// ClearSubject clears the value of the "subject" field.
func (_u *DocumentUpdateOne) ClearSubject() *DocumentUpdateOne {
	_u.mutation.ClearSubject()
	return _u
}

// SetKeywords sets the "keywords" field.
func (_u *DocumentUpdateOne) SetKeywords(v string) *DocumentUpdateOne {
	_u.mutation.SetKeywords(v)
	return _u
}

// SetNillableKeywords sets the "keywords" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableKeywords(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetKeywords(*v)
	}
	return _u
}

// ClearKeywords clears the value of the "keywords" field.
func (_u *DocumentUpdateOne) ClearKeywords() *DocumentUpdateOne {
	_u.mutation.ClearKeywords()
	return _u
}

// SetCategory sets the "category" field.
func (_u *DocumentUpdateOne) SetCategory(v string) *DocumentUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableCategory(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// ClearCategory clears the value of the "category" field.
func (_u *DocumentUpdateOne) ClearCategory() *DocumentUpdateOne {
	_u.mutation.ClearCategory()
	return _u
}

// SetTags sets the "tags" field.
func (_u *DocumentUpdateOne) SetTags(v []string) *DocumentUpdateOne {
	_u.mutation.SetTags(v)
	return _u
}

// AppendTags appends value to the "tags" field.
func (_u *DocumentUpdateOne) AppendTags(v []string) *DocumentUpdateOne {
	_u.mutation.AppendTags(v)
	return _u
}

// ClearTags clears the value of the "tags" field.
func (_u *DocumentUpdateOne) ClearTags() *DocumentUpdateOne {
	_u.mutation.ClearTags()
	return _u
}

// SetPdfCreationDate sets the "pdf_creation_date" field.
func (_u *DocumentUpdateOne) SetPdfCreationDate(v time.Time) *DocumentUpdateOne {
	_u.mutation.SetPdfCreationDate(v)
	return _u
}

// SetNillablePdfCreationDate sets the "pdf_creation_date" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillablePdfCreationDate(v *time.Time) *DocumentUpdateOne {
	if v != nil {
		_u.SetPdfCreationDate(*v)
	}
	return _u
}

// ClearPdfCreationDate clears the value of the "pdf_creation_date" field.
func (_u *DocumentUpdateOne) ClearPdfCreationDate() *DocumentUpdateOne {
	_u.mutation.ClearPdfCreationDate()
	return _u
}

// SetPdfModDate sets the "pdf_mod_date" field.
func (_u *DocumentUpdateOne) SetPdfModDate(v time.Time) *DocumentUpdateOne {
	_u.mutation.SetPdfModDate(v)
	return _u
}

// SetNillablePdfModDate sets the "pdf_mod_date" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillablePdfModDate(v *time.Time) *DocumentUpdateOne {
	if v != nil {
		_u.SetPdfModDate(*v)
	}
	return _u
}

// ClearPdfModDate clears the value of the "pdf_mod_date" field.
func (_u *DocumentUpdateOne) ClearPdfModDate() *DocumentUpdateOne {
	_u.mutation.ClearPdfModDate()
	return _u
}

// SetPdfCreator sets the "pdf_creator" field.
func (_u *DocumentUpdateOne) SetPdfCreator(v string) *DocumentUpdateOne {
	_u.mutation.SetPdfCreator(v)
	return _u
}

// SetNillablePdfCreator sets the "pdf_creator" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillablePdfCreator(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetPdfCreator(*v)
	}
	return _u
}

// ClearPdfCreator clears the value of the "pdf_creator" field.
func (_u *DocumentUpdateOne) ClearPdfCreator() *DocumentUpdateOne {
	_u.mutation.ClearPdfCreator()
	return _u
}

// SetPdfProducer sets the "pdf_producer" field.
func (_u *DocumentUpdateOne) SetPdfProducer(v string) *DocumentUpdateOne {
	_u.mutation.SetPdfProducer(v)
	return _u
}

// SetNillablePdfProducer sets the "pdf_producer" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillablePdfProducer(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetPdfProducer(*v)
	}
	return _u
}

// ClearPdfProducer clears the value of the "pdf_producer" field.
func (_u *DocumentUpdateOne) ClearPdfProducer() *DocumentUpdateOne {
	_u.mutation.ClearPdfProducer()
	return _u
}

// SetIsbn sets the "isbn" field.
func (_u *DocumentUpdateOne) SetIsbn(v string) *DocumentUpdateOne {
	_u.mutation.SetIsbn(v)
	return _u
}

// SetNillableIsbn sets the "isbn" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableIsbn(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetIsbn(*v)
	}
	return _u
}

// ClearIsbn clears the value of the "isbn" field.
func (_u *DocumentUpdateOne) ClearIsbn() *DocumentUpdateOne {
	_u.mutation.ClearIsbn()
	return _u
}

// SetPublisher sets the "publisher" field.
func (_u *DocumentUpdateOne) SetPublisher(v string) *DocumentUpdateOne {
	_u.mutation.SetPublisher(v)
	return _u
}

// SetNillablePublisher sets the "publisher" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillablePublisher(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetPublisher(*v)
	}
	return _u
}

// ClearPublisher clears the value of the "publisher" field.
func (_u *DocumentUpdateOne) ClearPublisher() *DocumentUpdateOne {
	_u.mutation.ClearPublisher()
	return _u
}

// SetPublicationYear sets the "publication_year" field.
func (_u *DocumentUpdateOne) SetPublicationYear(v int) *DocumentUpdateOne {
	_u.mutation.ResetPublicationYear()
	_u.mutation.SetPublicationYear(v)
	return _u
}

// SetNillablePublicationYear sets the "publication_year" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillablePublicationYear(v *int) *DocumentUpdateOne {
	if v != nil {
		_u.SetPublicationYear(*v)
	}
	return _u
}

// AddPublicationYear adds value to the "publication_year" field.
func (_u *DocumentUpdateOne) AddPublicationYear(v int) *DocumentUpdateOne {
	_u.mutation.AddPublicationYear(v)
	return _u
}

// ClearPublicationYear clears the value of the "publication_year" field.
func (_u *DocumentUpdateOne) ClearPublicationYear() *DocumentUpdateOne {
	_u.mutation.ClearPublicationYear()
	return _u
}

// SetLanguage sets the "language" field.
func (_u *DocumentUpdateOne) SetLanguage(v string) *DocumentUpdateOne {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableLanguage(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// SetImageCount sets the "image_count" field.
func (_u *DocumentUpdateOne) SetImageCount(v int) *DocumentUpdateOne {
	_u.mutation.ResetImageCount()
	_u.mutation.SetImageCount(v)
	return _u
}

// SetNillableImageCount sets the "image_count" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableImageCount(v *int) *DocumentUpdateOne {
	if v != nil {
		_u.SetImageCount(*v)
	}
	return _u
}

// AddImageCount adds value to the "image_count" field.
func (_u *DocumentUpdateOne) AddImageCount(v int) *DocumentUpdateOne {
	_u.mutation.AddImageCount(v)
	return _u
}

// SetHasImages sets the "has_images" field.
func (_u *DocumentUpdateOne) SetHasImages(v bool) *DocumentUpdateOne {
	_u.mutation.SetHasImages(v)
	return _u
}

// SetNillableHasImages sets the "has_images" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableHasImages(v *bool) *DocumentUpdateOne {
	if v != nil {
		_u.SetHasImages(*v)
	}
	return _u
}

// SetModifiedAt sets the "modified_at" field.
func (_u *DocumentUpdateOne) SetModifiedAt(v time.Time) *DocumentUpdateOne {
	_u.mutation.SetModifiedAt(v)
	return _u
}

// AddAttachmentIDs adds the "attachments" edge to the DocumentImage entity by IDs.
func (_u *DocumentUpdateOne) AddAttachmentIDs(ids ...int) *DocumentUpdateOne {
	_u.mutation.AddAttachmentIDs(ids...)
	return _u
}

// AddAttachments adds the "attachments" edges to the DocumentImage entity.
func (_u *DocumentUpdateOne) AddAttachments(v ...*DocumentImage) *DocumentUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAttachmentIDs(ids...)
}

// Mutation returns the DocumentMutation object of the builder.
func (_u *DocumentUpdateOne) Mutation() *DocumentMutation {
	return _u.mutation
}

// ClearAttachments clears all "attachments" edges to the DocumentImage entity.
func (_u *DocumentUpdateOne) ClearAttachments() *DocumentUpdateOne {
	_u.mutation.ClearAttachments()
	return _u
}

// RemoveAttachmentIDs removes the "attachments" edge to DocumentImage entities by IDs.
func (_u *DocumentUpdateOne) RemoveAttachmentIDs(ids ...int) *DocumentUpdateOne {
	_u.mutation.RemoveAttachmentIDs(ids...)
	return _u
}

// RemoveAttachments removes "attachments" edges to DocumentImage entities.
func (_u *DocumentUpdateOne) RemoveAttachments(v ...*DocumentImage) *DocumentUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAttachmentIDs(ids...)
}

// Where appends a list predicates to the DocumentUpdate builder.
func (_u *DocumentUpdateOne) Where(ps ...predicate.Document) *DocumentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DocumentUpdateOne) Select(field string, fields ...string) *DocumentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Document entity.
func (_u *DocumentUpdateOne) Save(ctx context.Context) (*Document, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentUpdateOne) SaveX(ctx context.Context) *Document {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DocumentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DocumentUpdateOne) defaults() {
	if _, ok := _u.mutation.ModifiedAt(); !ok {
		v := document.UpdateDefaultModifiedAt()
		_u.mutation.SetModifiedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocumentUpdateOne) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := document.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Document.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Author(); ok {
		if err := document.AuthorValidator(v); err != nil {
			return &ValidationError{Name: "author", err: fmt.Errorf(`ent: validator failed for field "Document.author": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SourceType(); ok {
		if err := document.SourceTypeValidator(v); err != nil {
			return &ValidationError{Name: "source_type", err: fmt.Errorf(`ent: validator failed for field "Document.source_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContentHash(); ok {
		if err := document.ContentHashValidator(v); err != nil {
			return &ValidationError{Name: "content_hash", err: fmt.Errorf(`ent: validator failed for field "Document.content_hash": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MarkdownPath(); ok {
		if err := document.MarkdownPathValidator(v); err != nil {
			return &ValidationError{Name: "markdown_path", err: fmt.Errorf(`ent: validator failed for field "Document.markdown_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OriginalPath(); ok {
		if err := document.OriginalPathValidator(v); err != nil {
			return &ValidationError{Name: "original_path", err: fmt.Errorf(`ent: validator failed for field "Document.original_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Subject(); ok {
		if err := document.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "Document.subject": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := document.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "Document.category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PdfCreator(); ok {
		if err := document.PdfCreatorValidator(v); err != nil {
			return &ValidationError{Name: "pdf_creator", err: fmt.Errorf(`ent: validator failed for field "Document.pdf_creator": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PdfProducer(); ok {
		if err := document.PdfProducerValidator(v); err != nil {
			return &ValidationError{Name: "pdf_producer", err: fmt.Errorf(`ent: validator failed for field "Document.pdf_producer": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Isbn(); ok {
		if err := document.IsbnValidator(v); err != nil {
			return &ValidationError{Name: "isbn", err: fmt.Errorf(`ent: validator failed for field "Document.isbn": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Publisher(); ok {
		if err := document.PublisherValidator(v); err != nil {
			return &ValidationError{Name: "publisher", err: fmt.Errorf(`ent: validator failed for field "Document.publisher": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Language(); ok {
		if err := document.LanguageValidator(v); err != nil {
			return &ValidationError{Name: "language", err: fmt.Errorf(`ent: validator failed for field "Document.language": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ImageCount(); ok {
		if err := document.ImageCountValidator(v); err != nil {
			return &ValidationError{Name: "image_count", err: fmt.Errorf(`ent: validator failed for field "Document.image_count": %w`, err)}
		}
	}
	return nil
}

func (_u *DocumentUpdateOne) sqlSave(ctx context.Context) (_node *Document, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(document.Table, document.Columns, sqlgraph.NewFieldSpec(document.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Document.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, document.FieldID)
		for _, f := range fields {
			if !document.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != document.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(document.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Author(); ok {
		_spec.SetField(document.FieldAuthor, field.TypeString, value)
	}
	if _u.mutation.AuthorCleared() {
		_spec.ClearField(document.FieldAuthor, field.TypeString)
	}
	if value, ok := _u.mutation.SourceType(); ok {
		_spec.SetField(document.FieldSourceType, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContentHash(); ok {
		_spec.SetField(document.FieldContentHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.MarkdownPath(); ok {
		_spec.SetField(document.FieldMarkdownPath, field.TypeString, value)
	}
	if value, ok := _u.mutation.OriginalPath(); ok {
		_spec.SetField(document.FieldOriginalPath, field.TypeString, value)
	}
	if _u.mutation.OriginalPathCleared() {
		_spec.ClearField(document.FieldOriginalPath, field.TypeString)
	}
	if value, ok := _u.mutation.PageCount(); ok {
		_spec.SetField(document.FieldPageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPageCount(); ok {
		_spec.AddField(document.FieldPageCount, field.TypeInt, value)
	}
	if _u.mutation.PageCountCleared() {
		_spec.ClearField(document.FieldPageCount, field.TypeInt)
	}
	if value, ok := _u.mutation.WordCount(); ok {
		_spec.SetField(document.FieldWordCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWordCount(); ok {
		_spec.AddField(document.FieldWordCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ChapterCount(); ok {
		_spec.SetField(document.FieldChapterCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedChapterCount(); ok {
		_spec.AddField(document.FieldChapterCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TableOfContents(); ok {
		_spec.SetField(document.FieldTableOfContents, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTableOfContents(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, document.FieldTableOfContents, value)
		})
	}
	if _u.mutation.TableOfContentsCleared() {
		_spec.ClearField(document.FieldTableOfContents, field.TypeJSON)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(document.FieldSubject, field.TypeString, value)
	}
	if _u.mutation.SubjectCleared() {
		_spec.ClearField(document.FieldSubject, field.TypeString)
	}
	if value, ok := _u.mutation.Keywords(); ok {
		_spec.SetField(document.FieldKeywords, field.TypeString, value)
	}
	if _u.mutation.KeywordsCleared() {
		_spec.ClearField(document.FieldKeywords, field.TypeString)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(document.FieldCategory, field.TypeString, value)
	}
	if _u.mutation.CategoryCleared() {
		_spec.ClearField(document.FieldCategory, field.TypeString)
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(document.FieldTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, document.FieldTags, value)
		})
	}
	if _u.mutation.TagsCleared() {
		_spec.ClearField(document.FieldTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.PdfCreationDate(); ok {
		_spec.SetField(document.FieldPdfCreationDate, field.TypeTime, value)
	}
	if _u.mutation.PdfCreationDateCleared() {
		_spec.ClearField(document.FieldPdfCreationDate, field.TypeTime)
	}
	if value, ok := _u.mutation.PdfModDate(); ok {
		_spec.SetField(document.FieldPdfModDate, field.TypeTime, value)
	}
	if _u.mutation.PdfModDateCleared() {
		_spec.ClearField(document.FieldPdfModDate, field.TypeTime)
	}
	if value, ok := _u.mutation.PdfCreator(); ok {
		_spec.SetField(document.FieldPdfCreator, field.TypeString, value)
	}
	if _u.mutation.PdfCreatorCleared() {
		_spec.ClearField(document.FieldPdfCreator, field.TypeString)
	}
	if value, ok := _u.mutation.PdfProducer(); ok {
		_spec.SetField(document.FieldPdfProducer, field.TypeString, value)
	}
	if _u.mutation.PdfProducerCleared() {
		_spec.ClearField(document.FieldPdfProducer, field.TypeString)
	}
	if value, ok := _u.mutation.Isbn(); ok {
		_spec.SetField(document.FieldIsbn, field.TypeString, value)
	}
	if _u.mutation.IsbnCleared() {
		_spec.ClearField(document.FieldIsbn, field.TypeString)
	}
	if value, ok := _u.mutation.Publisher(); ok {
		_spec.SetField(document.FieldPublisher, field.TypeString, value)
	}
	if _u.mutation.PublisherCleared() {
		_spec.ClearField(document.FieldPublisher, field.TypeString)
	}
	if value, ok := _u.mutation.PublicationYear(); ok {
		_spec.SetField(document.FieldPublicationYear, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPublicationYear(); ok {
		_spec.AddField(document.FieldPublicationYear, field.TypeInt, value)
	}
	if _u.mutation.PublicationYearCleared() {
		_spec.ClearField(document.FieldPublicationYear, field.TypeInt)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(document.FieldLanguage, field.TypeString, value)
	}
	if value, ok := _u.mutation.ImageCount(); ok {
		_spec.SetField(document.FieldImageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedImageCount(); ok {
		_spec.AddField(document.FieldImageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.HasImages(); ok {
		_spec.SetField(document.FieldHasImages, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ModifiedAt(); ok {
		_spec.SetField(document.FieldModifiedAt, field.TypeTime, value)
	}
	if _u.mutation.AttachmentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.AttachmentsTable,
			Columns: []string{document.AttachmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(documentimage.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAttachmentsIDs(); len(nodes) > 0 && !_u.mutation.AttachmentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.AttachmentsTable,
			Columns: []string{document.AttachmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(documentimage.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AttachmentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.AttachmentsTable,
			Columns: []string{document.AttachmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(documentimage.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Document{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{document.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
