// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/candlekeep/candlekeep/gen/ent/document"
	"github.com/candlekeep/candlekeep/gen/ent/documentimage"
	"github.com/candlekeep/candlekeep/internal/entity"
)

// DocumentCreate is the builder for creating a Document entity.
type DocumentCreate struct {
	config
	mutation *DocumentMutation
	hooks    []Hook
}

// SetTitle sets the "title" field.
func (_c *DocumentCreate) SetTitle(v string) *DocumentCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetAuthor sets the "author" field.
func (_c *DocumentCreate) SetAuthor(v string) *DocumentCreate {
	_c.mutation.SetAuthor(v)
	return _c
}

// SetNillableAuthor sets the "author" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableAuthor(v *string) *DocumentCreate {
	if v != nil {
		_c.SetAuthor(*v)
	}
	return _c
}

// SetSourceType sets the "source_type" field.
func (_c *DocumentCreate) SetSourceType(v string) *DocumentCreate {
	_c.mutation.SetSourceType(v)
	return _c
}

// SetContentHash sets the "content_hash" field.
func (_c *DocumentCreate) SetContentHash(v string) *DocumentCreate {
	_c.mutation.SetContentHash(v)
	return _c
}

// SetMarkdownPath sets the "markdown_path" field.
func (_c *DocumentCreate) SetMarkdownPath(v string) *DocumentCreate {
	_c.mutation.SetMarkdownPath(v)
	return _c
}

// SetOriginalPath sets the "original_path" field.
func (_c *DocumentCreate) SetOriginalPath(v string) *DocumentCreate {
	_c.mutation.SetOriginalPath(v)
	return _c
}

// SetNillableOriginalPath sets the "original_path" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableOriginalPath(v *string) *DocumentCreate {
	if v != nil {
		_c.SetOriginalPath(*v)
	}
	return _c
}

// SetPageCount sets the "page_count" field.
func (_c *DocumentCreate) SetPageCount(v int) *DocumentCreate {
	_c.mutation.SetPageCount(v)
	return _c
}

// SetNillablePageCount sets the "page_count" field if the given value is not nil.
func (_c *DocumentCreate) SetNillablePageCount(v *int) *DocumentCreate {
	if v != nil {
		_c.SetPageCount(*v)
	}
	return _c
}

// SetWordCount sets the "word_count" field.
func (_c *DocumentCreate) SetWordCount(v int) *DocumentCreate {
	_c.mutation.SetWordCount(v)
	return _c
}

// SetNillableWordCount sets the "word_count" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableWordCount(v *int) *DocumentCreate {
	if v != nil {
		_c.SetWordCount(*v)
	}
	return _c
}

// SetChapterCount sets the "chapter_count" field.
func (_c *DocumentCreate) SetChapterCount(v int) *DocumentCreate {
	_c.mutation.SetChapterCount(v)
	return _c
}

// SetNillableChapterCount sets the "chapter_count" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableChapterCount(v *int) *DocumentCreate {
	if v != nil {
		_c.SetChapterCount(*v)
	}
	return _c
}

// SetTableOfContents sets the "table_of_contents" field.
func (_c *DocumentCreate) SetTableOfContents(v []entity.TOCEntry) *DocumentCreate {
	_c.mutation.SetTableOfContents(v)
	return _c
}

// SetSubject sets the "subject" field.
func (_c *DocumentCreate) SetSubject(v string) *DocumentCreate {
	_c.mutation.SetSubject(v)
	return _c
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableSubject(v *string) *DocumentCreate {
	if v != nil {
		_c.SetSubject(*v)
	}
	return _c
}

// SetKeywords sets the "keywords" field.
func (_c *DocumentCreate) SetKeywords(v string) *DocumentCreate {
	_c.mutation.SetKeywords(v)
	return _c
}

// SetNillableKeywords sets the "keywords" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableKeywords(v *string) *DocumentCreate {
	if v != nil {
		_c.SetKeywords(*v)
	}
	return _c
}

// SetCategory sets the "category" field.
func (_c *DocumentCreate) SetCategory(v string) *DocumentCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableCategory(v *string) *DocumentCreate {
	if v != nil {
		_c.SetCategory(*v)
	}
	return _c
}

// SetTags sets the "tags" field.
func (_c *DocumentCreate) SetTags(v []string) *DocumentCreate {
	_c.mutation.SetTags(v)
	return _c
}

// SetPdfCreationDate sets the "pdf_creation_date" field.
func (_c *DocumentCreate) SetPdfCreationDate(v time.Time) *DocumentCreate {
	_c.mutation.SetPdfCreationDate(v)
	return _c
}

// SetNillablePdfCreationDate sets the "pdf_creation_date" field if the given value is not nil.
func (_c *DocumentCreate) SetNillablePdfCreationDate(v *time.Time) *DocumentCreate {
	if v != nil {
		_c.SetPdfCreationDate(*v)
	}
	return _c
}

// SetPdfModDate sets the "pdf_mod_date" field.
func (_c *DocumentCreate) SetPdfModDate(v time.Time) *DocumentCreate {
	_c.mutation.SetPdfModDate(v)
	return _c
}

// SetNillablePdfModDate sets the "pdf_mod_date" field if the given value is not nil.
func (_c *DocumentCreate) SetNillablePdfModDate(v *time.Time) *DocumentCreate {
	if v != nil {
		_c.SetPdfModDate(*v)
	}
	return _c
}

// SetPdfCreator sets the "pdf_creator" field.
func (_c *DocumentCreate) SetPdfCreator(v string) *DocumentCreate {
	_c.mutation.SetPdfCreator(v)
	return _c
}

// SetNillablePdfCreator sets the "pdf_creator" field if the given value is not nil.
func (_c *DocumentCreate) SetNillablePdfCreator(v *string) *DocumentCreate {
	if v != nil {
		_c.SetPdfCreator(*v)
	}
	return _c
}

// SetPdfProducer sets the "pdf_producer" field.
func (_c *DocumentCreate) SetPdfProducer(v string) *DocumentCreate {
	_c.mutation.SetPdfProducer(v)
	return _c
}

// SetNillablePdfProducer sets the "pdf_producer" field if the given value is not nil.
func (_c *DocumentCreate) SetNillablePdfProducer(v *string) *DocumentCreate {
	if v != nil {
		_c.SetPdfProducer(*v)
	}
	return _c
}

// SetIsbn sets the "isbn" field.
func (_c *DocumentCreate) SetIsbn(v string) *DocumentCreate {
	_c.mutation.SetIsbn(v)
	return _c
}

// SetNillableIsbn sets the "isbn" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableIsbn(v *string) *DocumentCreate {
	if v != nil {
		_c.SetIsbn(*v)
	}
	return _c
}

// SetPublisher sets the "publisher" field.
func (_c *DocumentCreate) SetPublisher(v string) *DocumentCreate {
	_c.mutation.SetPublisher(v)
	return _c
}

// SetNillablePublisher sets the "publisher" field if the given value is not nil.
func (_c *DocumentCreate) SetNillablePublisher(v *string) *DocumentCreate {
	if v != nil {
		_c.SetPublisher(*v)
	}
	return _c
}

// SetPublicationYear sets the "publication_year" field.
func (_c *DocumentCreate) SetPublicationYear(v int) *DocumentCreate {
	_c.mutation.SetPublicationYear(v)
	return _c
}

// SetNillablePublicationYear sets the "publication_year" field if the given value is not nil.
func (_c *DocumentCreate) SetNillablePublicationYear(v *int) *DocumentCreate {
	if v != nil {
		_c.SetPublicationYear(*v)
	}
	return _c
}

// SetLanguage sets the "language" field.
func (_c *DocumentCreate) SetLanguage(v string) *DocumentCreate {
	_c.mutation.SetLanguage(v)
	return _c
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableLanguage(v *string) *DocumentCreate {
	if v != nil {
		_c.SetLanguage(*v)
	}
	return _c
}

// SetImageCount sets the "image_count" field.
func (_c *DocumentCreate) SetImageCount(v int) *DocumentCreate {
	_c.mutation.SetImageCount(v)
	return _c
}

// SetNillableImageCount sets the "image_count" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableImageCount(v *int) *DocumentCreate {
	if v != nil {
		_c.SetImageCount(*v)
	}
	return _c
}

// SetHasImages sets the "has_images" field.
func (_c *DocumentCreate) SetHasImages(v bool) *DocumentCreate {
	_c.mutation.SetHasImages(v)
	return _c
}

// SetNillableHasImages sets the "has_images" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableHasImages(v *bool) *DocumentCreate {
	if v != nil {
		_c.SetHasImages(*v)
	}
	return _c
}

// SetAddedAt sets the "added_at" field.
func (_c *DocumentCreate) SetAddedAt(v time.Time) *DocumentCreate {
	_c.mutation.SetAddedAt(v)
	return _c
}

// SetNillableAddedAt sets the "added_at" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableAddedAt(v *time.Time) *DocumentCreate {
	if v != nil {
		_c.SetAddedAt(*v)
	}
	return _c
}

// SetModifiedAt sets the "modified_at" field.
func (_c *DocumentCreate) SetModifiedAt(v time.Time) *DocumentCreate {
	_c.mutation.SetModifiedAt(v)
	return _c
}

// SetNillableModifiedAt sets the "modified_at" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableModifiedAt(v *time.Time) *DocumentCreate {
	if v != nil {
		_c.SetModifiedAt(*v)
	}
	return _c
}

// AddAttachmentIDs adds the "attachments" edge to the DocumentImage entity by IDs.
func (_c *DocumentCreate) AddAttachmentIDs(ids ...int) *DocumentCreate {
	_c.mutation.AddAttachmentIDs(ids...)
	return _c
}

// AddAttachments adds the "attachments" edges to the DocumentImage entity.
func (_c *DocumentCreate) AddAttachments(v ...*DocumentImage) *DocumentCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAttachmentIDs(ids...)
}

// Mutation returns the DocumentMutation object of the builder.
func (_c *DocumentCreate) Mutation() *DocumentMutation {
	return _c.mutation
}

// Save creates the Document in the database.
func (_c *DocumentCreate) Save(ctx context.Context) (*Document, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DocumentCreate) SaveX(ctx context.Context) *Document {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DocumentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DocumentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DocumentCreate) defaults() {
	if _, ok := _c.mutation.WordCount(); !ok {
		v := document.DefaultWordCount
		_c.mutation.SetWordCount(v)
	}
	if _, ok := _c.mutation.ChapterCount(); !ok {
		v := document.DefaultChapterCount
		_c.mutation.SetChapterCount(v)
	}
	if _, ok := _c.mutation.Language(); !ok {
		v := document.DefaultLanguage
		_c.mutation.SetLanguage(v)
	}
	if _, ok := _c.mutation.ImageCount(); !ok {
		v := document.DefaultImageCount
		_c.mutation.SetImageCount(v)
	}
	if _, ok := _c.mutation.HasImages(); !ok {
		v := document.DefaultHasImages
		_c.mutation.SetHasImages(v)
	}
	if _, ok := _c.mutation.AddedAt(); !ok {
		v := document.DefaultAddedAt()
		_c.mutation.SetAddedAt(v)
	}
	if _, ok := _c.mutation.ModifiedAt(); !ok {
		v := document.DefaultModifiedAt()
		_c.mutation.SetModifiedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DocumentCreate) check() error {
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Document.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := document.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Document.title": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Author(); ok {
		if err := document.AuthorValidator(v); err != nil {
			return &ValidationError{Name: "author", err: fmt.Errorf(`ent: validator failed for field "Document.author": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SourceType(); !ok {
		return &ValidationError{Name: "source_type", err: errors.New(`ent: missing required field "Document.source_type"`)}
	}
	if v, ok := _c.mutation.SourceType(); ok {
		if err := document.SourceTypeValidator(v); err != nil {
			return &ValidationError{Name: "source_type", err: fmt.Errorf(`ent: validator failed for field "Document.source_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ContentHash(); !ok {
		return &ValidationError{Name: "content_hash", err: errors.New(`ent: missing required field "Document.content_hash"`)}
	}
	if v, ok := _c.mutation.ContentHash(); ok {
		if err := document.ContentHashValidator(v); err != nil {
			return &ValidationError{Name: "content_hash", err: fmt.Errorf(`ent: validator failed for field "Document.content_hash": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MarkdownPath(); !ok {
		return &ValidationError{Name: "markdown_path", err: errors.New(`ent: missing required field "Document.markdown_path"`)}
	}
	if v, ok := _c.mutation.MarkdownPath(); ok {
		if err := document.MarkdownPathValidator(v); err != nil {
			return &ValidationError{Name: "markdown_path", err: fmt.Errorf(`ent: validator failed for field "Document.markdown_path": %w`, err)}
		}
	}
	if v, ok := _c.mutation.OriginalPath(); ok {
		if err := document.OriginalPathValidator(v); err != nil {
			return &ValidationError{Name: "original_path", err: fmt.Errorf(`ent: validator failed for field "Document.original_path": %w`, err)}
		}
	}
	if _, ok := _c.mutation.WordCount(); !ok {
		return &ValidationError{Name: "word_count", err: errors.New(`ent: missing required field "Document.word_count"`)}
	}
	if _, ok := _c.mutation.ChapterCount(); !ok {
		return &ValidationError{Name: "chapter_count", err: errors.New(`ent: missing required field "Document.chapter_count"`)}
	}
	if v, ok := _c.mutation.Subject(); ok {
		if err := document.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "Document.subject": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Category(); ok {
		if err := document.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "Document.category": %w`, err)}
		}
	}
	if v, ok := _c.mutation.PdfCreator(); ok {
		if err := document.PdfCreatorValidator(v); err != nil {
			return &ValidationError{Name: "pdf_creator", err: fmt.Errorf(`ent: validator failed for field "Document.pdf_creator": %w`, err)}
		}
	}
	if v, ok := _c.mutation.PdfProducer(); ok {
		if err := document.PdfProducerValidator(v); err != nil {
			return &ValidationError{Name: "pdf_producer", err: fmt.Errorf(`ent: validator failed for field "Document.pdf_producer": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Isbn(); ok {
		if err := document.IsbnValidator(v); err != nil {
			return &ValidationError{Name: "isbn", err: fmt.Errorf(`ent: validator failed for field "Document.isbn": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Publisher(); ok {
		if err := document.PublisherValidator(v); err != nil {
			return &ValidationError{Name: "publisher", err: fmt.Errorf(`ent: validator failed for field "Document.publisher": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Language(); !ok {
		return &ValidationError{Name: "language", err: errors.New(`ent: missing required field "Document.language"`)}
	}
	if v, ok := _c.mutation.Language(); ok {
		if err := document.LanguageValidator(v); err != nil {
			return &ValidationError{Name: "language", err: fmt.Errorf(`ent: validator failed for field "Document.language": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ImageCount(); !ok {
		return &ValidationError{Name: "image_count", err: errors.New(`ent: missing required field "Document.image_count"`)}
	}
	if v, ok := _c.mutation.ImageCount(); ok {
		if err := document.ImageCountValidator(v); err != nil {
			return &ValidationError{Name: "image_count", err: fmt.Errorf(`ent: validator failed for field "Document.image_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.HasImages(); !ok {
		return &ValidationError{Name: "has_images", err: errors.New(`ent: missing required field "Document.has_images"`)}
	}
	if _, ok := _c.mutation.AddedAt(); !ok {
		return &ValidationError{Name: "added_at", err: errors.New(`ent: missing required field "Document.added_at"`)}
	}
	if _, ok := _c.mutation.ModifiedAt(); !ok {
		return &ValidationError{Name: "modified_at", err: errors.New(`ent: missing required field "Document.modified_at"`)}
	}
	return nil
}

func (_c *DocumentCreate) sqlSave(ctx context.Context) (*Document, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DocumentCreate) createSpec() (*Document, *sqlgraph.CreateSpec) {
	var (
		_node = &Document{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(document.Table, sqlgraph.NewFieldSpec(document.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(document.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Author(); ok {
		_spec.SetField(document.FieldAuthor, field.TypeString, value)
		_node.Author = value
	}
	if value, ok := _c.mutation.SourceType(); ok {
		_spec.SetField(document.FieldSourceType, field.TypeString, value)
		_node.SourceType = value
	}
	if value, ok := _c.mutation.ContentHash(); ok {
		_spec.SetField(document.FieldContentHash, field.TypeString, value)
		_node.ContentHash = value
	}
	if value, ok := _c.mutation.MarkdownPath(); ok {
		_spec.SetField(document.FieldMarkdownPath, field.TypeString, value)
		_node.MarkdownPath = value
	}
	if value, ok := _c.mutation.OriginalPath(); ok {
		_spec.SetField(document.FieldOriginalPath, field.TypeString, value)
		_node.OriginalPath = value
	}
	if value, ok := _c.mutation.PageCount(); ok {
		_spec.SetField(document.FieldPageCount, field.TypeInt, value)
		_node.PageCount = &value
	}
	if value, ok := _c.mutation.WordCount(); ok {
		_spec.SetField(document.FieldWordCount, field.TypeInt, value)
		_node.WordCount = value
	}
	if value, ok := _c.mutation.ChapterCount(); ok {
		_spec.SetField(document.FieldChapterCount, field.TypeInt, value)
		_node.ChapterCount = value
	}
	if value, ok := _c.mutation.TableOfContents(); ok {
		_spec.SetField(document.FieldTableOfContents, field.TypeJSON, value)
		_node.TableOfContents = value
	}
	if value, ok := _c.mutation.Subject(); ok {
		_spec.SetField(document.FieldSubject, field.TypeString, value)
		_node.Subject = value
	}
	if value, ok := _c.mutation.Keywords(); ok {
		_spec.SetField(document.FieldKeywords, field.TypeString, value)
		_node.Keywords = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(document.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.Tags(); ok {
		_spec.SetField(document.FieldTags, field.TypeJSON, value)
		_node.Tags = value
	}
	if value, ok := _c.mutation.PdfCreationDate(); ok {
		_spec.SetField(document.FieldPdfCreationDate, field.TypeTime, value)
		_node.PdfCreationDate = &value
	}
	if value, ok := _c.mutation.PdfModDate(); ok {
		_spec.SetField(document.FieldPdfModDate, field.TypeTime, value)
		_node.PdfModDate = &value
	}
	if value, ok := _c.mutation.PdfCreator(); ok {
		_spec.SetField(document.FieldPdfCreator, field.TypeString, value)
		_node.PdfCreator = value
	}
	if value, ok := _c.mutation.PdfProducer(); ok {
		_spec.SetField(document.FieldPdfProducer, field.TypeString, value)
		_node.PdfProducer = value
	}
	if value, ok := _c.mutation.Isbn(); ok {
		_spec.SetField(document.FieldIsbn, field.TypeString, value)
		_node.Isbn = value
	}
	if value, ok := _c.mutation.Publisher(); ok {
		_spec.SetField(document.FieldPublisher, field.TypeString, value)
		_node.Publisher = value
	}
	if value, ok := _c.mutation.PublicationYear(); ok {
		_spec.SetField(document.FieldPublicationYear, field.TypeInt, value)
		_node.PublicationYear = &value
	}
	if value, ok := _c.mutation.Language(); ok {
		_spec.SetField(document.FieldLanguage, field.TypeString, value)
		_node.Language = value
	}
	if value, ok := _c.mutation.ImageCount(); ok {
		_spec.SetField(document.FieldImageCount, field.TypeInt, value)
		_node.ImageCount = value
	}
	if value, ok := _c.mutation.HasImages(); ok {
		_spec.SetField(document.FieldHasImages, field.TypeBool, value)
		_node.HasImages = value
	}
	if value, ok := _c.mutation.AddedAt(); ok {
		_spec.SetField(document.FieldAddedAt, field.TypeTime, value)
		_node.AddedAt = value
	}
	if value, ok := _c.mutation.ModifiedAt(); ok {
		_spec.SetField(document.FieldModifiedAt, field.TypeTime, value)
		_node.ModifiedAt = value
	}
	if nodes := _c.mutation.AttachmentsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// DocumentCreateBulk is the builder for creating many Document entities in bulk.
type DocumentCreateBulk struct {
	config
	err      error
	builders []*DocumentCreate
}

// Save creates the Document entities in the database.
func (_c *DocumentCreateBulk) Save(ctx context.Context) ([]*Document, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Document, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DocumentMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *DocumentCreateBulk) SaveX(ctx context.Context) []*Document {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DocumentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DocumentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
