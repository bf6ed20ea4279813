// Code generated by ent, DO NOT EDIT.

package document

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the document type in the database.
	Label = "document"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldAuthor holds the string denoting the author field in the database.
	FieldAuthor = "author"
	// FieldSourceType holds the string denoting the source_type field in the database.
	FieldSourceType = "source_type"
	// FieldContentHash holds the string denoting the content_hash field in the database.
	FieldContentHash = "content_hash"
	// FieldMarkdownPath holds the string denoting the markdown_path field in the database.
	FieldMarkdownPath = "markdown_path"
	// FieldOriginalPath holds the string denoting the original_path field in the database.
	FieldOriginalPath = "original_path"
	// FieldPageCount holds the string denoting the page_count field in the database.
	FieldPageCount = "page_count"
	// FieldWordCount holds the string denoting the word_count field in the database.
	FieldWordCount = "word_count"
	// FieldChapterCount holds the string denoting the chapter_count field in the database.
	FieldChapterCount = "chapter_count"
	// FieldTableOfContents holds the string denoting the table_of_contents field in the database.
	FieldTableOfContents = "table_of_contents"
	// FieldSubject holds the string denoting the subject field in the database.
	FieldSubject = "subject"
	// FieldKeywords holds the string denoting the keywords field in the database.
	FieldKeywords = "keywords"
	// FieldCategory holds the string denoting the category field in the database.
	FieldCategory = "category"
	// FieldTags holds the string denoting the tags field in the database.
	FieldTags = "tags"
	// FieldPdfCreationDate holds the string denoting the pdf_creation_date field in the database.
	FieldPdfCreationDate = "pdf_creation_date"
	// FieldPdfModDate holds the string denoting the pdf_mod_date field in the database.
	FieldPdfModDate = "pdf_mod_date"
	// FieldPdfCreator holds the string denoting the pdf_creator field in the database.
	FieldPdfCreator = "pdf_creator"
	// FieldPdfProducer holds the string denoting the pdf_producer field in the database.
	FieldPdfProducer = "pdf_producer"
	// FieldIsbn holds the string denoting the isbn field in the database.
	FieldIsbn = "isbn"
	// FieldPublisher holds the string denoting the publisher field in the database.
	FieldPublisher = "publisher"
	// FieldPublicationYear holds the string denoting the publication_year field in the database.
	FieldPublicationYear = "publication_year"
	// FieldLanguage holds the string denoting the language field in the database.
	FieldLanguage = "language"
	// FieldImageCount holds the string denoting the image_count field in the database.
	FieldImageCount = "image_count"
	// FieldHasImages holds the string denoting the has_images field in the database.
	FieldHasImages = "has_images"
	// FieldAddedAt holds the string denoting the added_at field in the database.
	FieldAddedAt = "added_at"
	// FieldModifiedAt holds the string denoting the modified_at field in the database.
	FieldModifiedAt = "modified_at"
	// EdgeAttachments holds the string denoting the attachments edge name in mutations.
	EdgeAttachments = "attachments"
	// Table holds the table name of the document in the database.
	Table = "documents"
	// AttachmentsTable is the table that holds the attachments relation/edge.
	AttachmentsTable = "document_images"
	// AttachmentsInverseTable is the table name for the DocumentImage entity.
	// It exists in this package in order to avoid circular dependency with the "documentimage" package.
	AttachmentsInverseTable = "document_images"
	// AttachmentsColumn is the table column denoting the attachments relation/edge.
	AttachmentsColumn = "document_id"
)

// Columns holds all SQL columns for document fields.
var Columns = []string{
	FieldID,
	FieldTitle,
	FieldAuthor,
	FieldSourceType,
	FieldContentHash,
	FieldMarkdownPath,
	FieldOriginalPath,
	FieldPageCount,
	FieldWordCount,
	FieldChapterCount,
	FieldTableOfContents,
	FieldSubject,
	FieldKeywords,
	FieldCategory,
	FieldTags,
	FieldPdfCreationDate,
	FieldPdfModDate,
	FieldPdfCreator,
	FieldPdfProducer,
	FieldIsbn,
	FieldPublisher,
	FieldPublicationYear,
	FieldLanguage,
	FieldImageCount,
	FieldHasImages,
	FieldAddedAt,
	FieldModifiedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// TitleValidator is a validator for the "title" field. It is called by the builders before save.
	TitleValidator func(string) error
	// AuthorValidator is a validator for the "author" field. It is called by the builders before save.
	AuthorValidator func(string) error
	// SourceTypeValidator is a validator for the "source_type" field. It is called by the builders before save.
	SourceTypeValidator func(string) error
	// ContentHashValidator is a validator for the "content_hash" field. It is called by the builders before save.
	ContentHashValidator func(string) error
	// MarkdownPathValidator is a validator for the "markdown_path" field. It is called by the builders before save.
	MarkdownPathValidator func(string) error
	// OriginalPathValidator is a validator for the "original_path" field. It is called by the builders before save.
	OriginalPathValidator func(string) error
	// DefaultWordCount holds the default value on creation for the "word_count" field.
	DefaultWordCount int
	// DefaultChapterCount holds the default value on creation for the "chapter_count" field.
	DefaultChapterCount int
	// SubjectValidator is a validator for the "subject" field. It is called by the builders before save.
	SubjectValidator func(string) error
	// CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	CategoryValidator func(string) error
	// PdfCreatorValidator is a validator for the "pdf_creator" field. It is called by the builders before save.
	PdfCreatorValidator func(string) error
	// PdfProducerValidator is a validator for the "pdf_producer" field. It is called by the builders before save.
	PdfProducerValidator func(string) error
	// IsbnValidator is a validator for the "isbn" field. It is called by the builders before save.
	IsbnValidator func(string) error
	// PublisherValidator is a validator for the "publisher" field. It is called by the builders before save.
	PublisherValidator func(string) error
	// DefaultLanguage holds the default value on creation for the "language" field.
	DefaultLanguage string
	// LanguageValidator is a validator for the "language" field. It is called by the builders before save.
	LanguageValidator func(string) error
	// DefaultImageCount holds the default value on creation for the "image_count" field.
	DefaultImageCount int
	// ImageCountValidator is a validator for the "image_count" field. It is called by the builders before save.
	ImageCountValidator func(int) error
	// DefaultHasImages holds the default value on creation for the "has_images" field.
	DefaultHasImages bool
	// DefaultAddedAt holds the default value on creation for the "added_at" field.
	DefaultAddedAt func() time.Time
	// DefaultModifiedAt holds the default value on creation for the "modified_at" field.
	DefaultModifiedAt func() time.Time
	// UpdateDefaultModifiedAt holds the default value on update for the "modified_at" field.
	UpdateDefaultModifiedAt func() time.Time
)

// OrderOption defines the ordering options for the Document queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByAuthor orders the results by the author field.
func ByAuthor(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAuthor, opts...).ToFunc()
}

// BySourceType orders the results by the source_type field.
func BySourceType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceType, opts...).ToFunc()
}

// ByContentHash orders the results by the content_hash field.
func ByContentHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContentHash, opts...).ToFunc()
}

// ByMarkdownPath orders the results by the markdown_path field.
func ByMarkdownPath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMarkdownPath, opts...).ToFunc()
}

// ByOriginalPath orders the results by the original_path field.
func ByOriginalPath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOriginalPath, opts...).ToFunc()
}

// ByPageCount orders the results by the page_count field.
func ByPageCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPageCount, opts...).ToFunc()
}

// ByWordCount orders the results by the word_count field.
func ByWordCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWordCount, opts...).ToFunc()
}

// ByChapterCount orders the results by the chapter_count field.
func ByChapterCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChapterCount, opts...).ToFunc()
}

// BySubject orders the results by the subject field.
func BySubject(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubject, opts...).ToFunc()
}

// ByKeywords orders the results by the keywords field.
func ByKeywords(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKeywords, opts...).ToFunc()
}

// ByCategory orders the results by the category field.
func ByCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategory, opts...).ToFunc()
}

// ByPdfCreationDate orders the results by the pdf_creation_date field.
func ByPdfCreationDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPdfCreationDate, opts...).ToFunc()
}

// ByPdfModDate orders the results by the pdf_mod_date field.
func ByPdfModDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPdfModDate, opts...).ToFunc()
}

// ByPdfCreator orders the results by the pdf_creator field.
func ByPdfCreator(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPdfCreator, opts...).ToFunc()
}

// ByPdfProducer orders the results by the pdf_producer field.
func ByPdfProducer(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPdfProducer, opts...).ToFunc()
}

// ByIsbn orders the results by the isbn field.
func ByIsbn(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsbn, opts...).ToFunc()
}

// ByPublisher orders the results by the publisher field.
func ByPublisher(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPublisher, opts...).ToFunc()
}

// ByPublicationYear orders the results by the publication_year field.
func ByPublicationYear(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPublicationYear, opts...).ToFunc()
}

// ByLanguage orders the results by the language field.
func ByLanguage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLanguage, opts...).ToFunc()
}

// ByImageCount orders the results by the image_count field.
func ByImageCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldImageCount, opts...).ToFunc()
}

// ByHasImages orders the results by the has_images field.
func ByHasImages(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHasImages, opts...).ToFunc()
}

// ByAddedAt orders the results by the added_at field.
func ByAddedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAddedAt, opts...).ToFunc()
}

// ByModifiedAt orders the results by the modified_at field.
func ByModifiedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModifiedAt, opts...).ToFunc()
}

// ByAttachmentsCount orders the results by attachments count.
func ByAttachmentsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAttachmentsStep(), opts...)
	}
}

// ByAttachments orders the results by attachments terms.
func ByAttachments(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAttachmentsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newAttachmentsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AttachmentsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AttachmentsTable, AttachmentsColumn),
	)
}
