// Code generated by ent, DO NOT EDIT.

package document

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/candlekeep/candlekeep/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldID, id))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldTitle, v))
}

// Author applies equality check predicate on the "author" field. It's identical to AuthorEQ.
func Author(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldAuthor, v))
}

// SourceType applies equality check predicate on the "source_type" field. It's identical to SourceTypeEQ.
func SourceType(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldSourceType, v))
}

// ContentHash applies equality check predicate on the "content_hash" field. It's identical to ContentHashEQ.
func ContentHash(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldContentHash, v))
}

// MarkdownPath applies equality check predicate on the "markdown_path" field. It's identical to MarkdownPathEQ.
func MarkdownPath(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldMarkdownPath, v))
}

// OriginalPath applies equality check predicate on the "original_path" field. It's identical to OriginalPathEQ.
func OriginalPath(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldOriginalPath, v))
}

// PageCount applies equality check predicate on the "page_count" field. It's identical to PageCountEQ.
func PageCount(v int) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldPageCount, v))
}

// WordCount applies equality check predicate on the "word_count" field. It's identical to WordCountEQ.
func WordCount(v int) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldWordCount, v))
}

// ChapterCount applies equality check predicate on the "chapter_count" field. It's identical to ChapterCountEQ.
func ChapterCount(v int) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldChapterCount, v))
}

// Subject applies equality check predicate on the "subject" field. It's identical to SubjectEQ.
func Subject(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldSubject, v))
}

// Keywords applies equality check predicate on the "keywords" field. It's identical to KeywordsEQ.
func Keywords(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldKeywords, v))
}

// Category applies equality check predicate on the "category" field. It's identical to CategoryEQ.
func Category(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldCategory, v))
}

// PdfCreationDate applies equality check predicate on the "pdf_creation_date" field. It's identical to PdfCreationDateEQ.
func PdfCreationDate(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldPdfCreationDate, v))
}

// PdfModDate applies equality check predicate on the "pdf_mod_date" field. It's identical to PdfModDateEQ.
func PdfModDate(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldPdfModDate, v))
}

// PdfCreator applies equality check predicate on the "pdf_creator" field. It's identical to PdfCreatorEQ.
func PdfCreator(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldPdfCreator, v))
}

// PdfProducer applies equality check predicate on the "pdf_producer" field. It's identical to PdfProducerEQ.
func PdfProducer(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldPdfProducer, v))
}

// Isbn applies equality check predicate on the "isbn" field. It's identical to IsbnEQ.
func Isbn(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldIsbn, v))
}

// Publisher applies equality check predicate on the "publisher" field. It's identical to PublisherEQ.
func Publisher(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldPublisher, v))
}

// PublicationYear applies equality check predicate on the "publication_year" field. It's identical to PublicationYearEQ.
func PublicationYear(v int) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldPublicationYear, v))
}

// Language applies equality check predicate on the "language" field. It's identical to LanguageEQ.
func Language(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldLanguage, v))
}

// ImageCount applies equality check predicate on the "image_count" field. It's identical to ImageCountEQ.
func ImageCount(v int) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldImageCount, v))
}

// HasImages applies equality check predicate on the "has_images" field. It's identical to HasImagesEQ.
func HasImages(v bool) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldHasImages, v))
}

// AddedAt applies equality check predicate on the "added_at" field. It's identical to AddedAtEQ.
func AddedAt(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldAddedAt, v))
}

// ModifiedAt applies equality check predicate on the "modified_at" field. It's identical to ModifiedAtEQ.
func ModifiedAt(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldModifiedAt, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldTitle, v))
}

// AuthorEQ applies the EQ predicate on the "author" field.
func AuthorEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldAuthor, v))
}

// AuthorNEQ applies the NEQ predicate on the "author" field.
func AuthorNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldAuthor, v))
}

// AuthorIn applies the In predicate on the "author" field.
func AuthorIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldAuthor, vs...))
}

// AuthorNotIn applies the NotIn predicate on the "author" field.
func AuthorNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldAuthor, vs...))
}

// AuthorGT applies the GT predicate on the "author" field.
func AuthorGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldAuthor, v))
}

// AuthorGTE applies the GTE predicate on the "author" field.
func AuthorGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldAuthor, v))
}

// AuthorLT applies the LT predicate on the "author" field.
func AuthorLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldAuthor, v))
}

// AuthorLTE applies the LTE predicate on the "author" field.
func AuthorLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldAuthor, v))
}

// AuthorContains applies the Contains predicate on the "author" field.
func AuthorContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldAuthor, v))
}

// AuthorHasPrefix applies the HasPrefix predicate on the "author" field.
func AuthorHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldAuthor, v))
}

// AuthorHasSuffix applies the HasSuffix predicate on the "author" field.
func AuthorHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldAuthor, v))
}

// AuthorIsNil applies the IsNil predicate on the "author" field.
func AuthorIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldAuthor))
}

// AuthorNotNil applies the NotNil predicate on the "author" field.
func AuthorNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldAuthor))
}

// AuthorEqualFold applies the EqualFold predicate on the "author" field.
func AuthorEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldAuthor, v))
}

// AuthorContainsFold applies the ContainsFold predicate on the "author" field.
func AuthorContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldAuthor, v))
}

// SourceTypeEQ applies the EQ predicate on the "source_type" field.
func SourceTypeEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldSourceType, v))
}

// SourceTypeNEQ applies the NEQ predicate on the "source_type" field.
func SourceTypeNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldSourceType, v))
}

// SourceTypeIn applies the In predicate on the "source_type" field.
func SourceTypeIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldSourceType, vs...))
}

// SourceTypeNotIn applies the NotIn predicate on the "source_type" field.
func SourceTypeNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldSourceType, vs...))
}

// SourceTypeGT applies the GT predicate on the "source_type" field.
func SourceTypeGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldSourceType, v))
}

// SourceTypeGTE applies the GTE predicate on the "source_type" field.
func SourceTypeGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldSourceType, v))
}

// SourceTypeLT applies the LT predicate on the "source_type" field.
func SourceTypeLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldSourceType, v))
}

// SourceTypeLTE applies the LTE predicate on the "source_type" field.
func SourceTypeLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldSourceType, v))
}

// SourceTypeContains applies the Contains predicate on the "source_type" field.
func SourceTypeContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldSourceType, v))
}

// SourceTypeHasPrefix applies the HasPrefix predicate on the "source_type" field.
func SourceTypeHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldSourceType, v))
}

// SourceTypeHasSuffix applies the HasSuffix predicate on the "source_type" field.
func SourceTypeHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldSourceType, v))
}

// SourceTypeEqualFold applies the EqualFold predicate on the "source_type" field.
func SourceTypeEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldSourceType, v))
}

// SourceTypeContainsFold applies the ContainsFold predicate on the "source_type" field.
func SourceTypeContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldSourceType, v))
}

// ContentHashEQ applies the EQ predicate on the "content_hash" field.
func ContentHashEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldContentHash, v))
}

// ContentHashNEQ applies the NEQ predicate on the "content_hash" field.
func ContentHashNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldContentHash, v))
}

// ContentHashIn applies the In predicate on the "content_hash" field.
func ContentHashIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldContentHash, vs...))
}

// ContentHashNotIn applies the NotIn predicate on the "content_hash" field.
func ContentHashNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldContentHash, vs...))
}

// ContentHashGT applies the GT predicate on the "content_hash" field.
func ContentHashGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldContentHash, v))
}

// ContentHashGTE applies the GTE predicate on the "content_hash" field.
func ContentHashGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldContentHash, v))
}

// ContentHashLT applies the LT predicate on the "content_hash" field.
func ContentHashLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldContentHash, v))
}

// ContentHashLTE applies the LTE predicate on the "content_hash" field.
func ContentHashLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldContentHash, v))
}

// ContentHashContains applies the Contains predicate on the "content_hash" field.
func ContentHashContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldContentHash, v))
}

// ContentHashHasPrefix applies the HasPrefix predicate on the "content_hash" field.
func ContentHashHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldContentHash, v))
}

// ContentHashHasSuffix applies the HasSuffix predicate on the "content_hash" field.
func ContentHashHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldContentHash, v))
}

// ContentHashEqualFold applies the EqualFold predicate on the "content_hash" field.
func ContentHashEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldContentHash, v))
}

// ContentHashContainsFold applies the ContainsFold predicate on the "content_hash" field.
func ContentHashContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldContentHash, v))
}

// MarkdownPathEQ applies the EQ predicate on the "markdown_path" field.
func MarkdownPathEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldMarkdownPath, v))
}

// MarkdownPathNEQ applies the NEQ predicate on the "markdown_path" field.
func MarkdownPathNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldMarkdownPath, v))
}

// MarkdownPathIn applies the In predicate on the "markdown_path" field.
func MarkdownPathIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldMarkdownPath, vs...))
}

// MarkdownPathNotIn applies the NotIn predicate on the "markdown_path" field.
func MarkdownPathNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldMarkdownPath, vs...))
}

// MarkdownPathGT applies the GT predicate on the "markdown_path" field.
func MarkdownPathGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldMarkdownPath, v))
}

// MarkdownPathGTE applies the GTE predicate on the "markdown_path" field.
func MarkdownPathGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldMarkdownPath, v))
}

// MarkdownPathLT applies the LT predicate on the "markdown_path" field.
func MarkdownPathLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldMarkdownPath, v))
}

// MarkdownPathLTE applies the LTE predicate on the "markdown_path" field.
func MarkdownPathLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldMarkdownPath, v))
}

// MarkdownPathContains applies the Contains predicate on the "markdown_path" field.
func MarkdownPathContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldMarkdownPath, v))
}

// MarkdownPathHasPrefix applies the HasPrefix predicate on the "markdown_path" field.
func MarkdownPathHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldMarkdownPath, v))
}

// MarkdownPathHasSuffix applies the HasSuffix predicate on the "markdown_path" field.
func MarkdownPathHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldMarkdownPath, v))
}

// MarkdownPathEqualFold applies the EqualFold predicate on the "markdown_path" field.
func MarkdownPathEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldMarkdownPath, v))
}

// MarkdownPathContainsFold applies the ContainsFold predicate on the "markdown_path" field.
func MarkdownPathContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldMarkdownPath, v))
}

// OriginalPathEQ applies the EQ predicate on the "original_path" field.
func OriginalPathEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldOriginalPath, v))
}

// OriginalPathNEQ applies the NEQ predicate on the "original_path" field.
func OriginalPathNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldOriginalPath, v))
}

// OriginalPathIn applies the In predicate on the "original_path" field.
func OriginalPathIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldOriginalPath, vs...))
}

// OriginalPathNotIn applies the NotIn predicate on the "original_path" field.
func OriginalPathNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldOriginalPath, vs...))
}

// OriginalPathGT applies the GT predicate on the "original_path" field.
func OriginalPathGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldOriginalPath, v))
}

// OriginalPathGTE applies the GTE predicate on the "original_path" field.
func OriginalPathGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldOriginalPath, v))
}

// OriginalPathLT applies the LT predicate on the "original_path" field.
func OriginalPathLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldOriginalPath, v))
}

// OriginalPathLTE applies the LTE predicate on the "original_path" field.
func OriginalPathLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldOriginalPath, v))
}

// OriginalPathContains applies the Contains predicate on the "original_path" field.
func OriginalPathContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldOriginalPath, v))
}

// OriginalPathHasPrefix applies the HasPrefix predicate on the "original_path" field.
func OriginalPathHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldOriginalPath, v))
}

// OriginalPathHasSuffix applies the HasSuffix predicate on the "original_path" field.
func OriginalPathHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldOriginalPath, v))
}

// OriginalPathIsNil applies the IsNil predicate on the "original_path" field.
func OriginalPathIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldOriginalPath))
}

// OriginalPathNotNil applies the NotNil predicate on the "original_path" field.
func OriginalPathNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldOriginalPath))
}

// OriginalPathEqualFold applies the EqualFold predicate on the "original_path" field.
func OriginalPathEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldOriginalPath, v))
}

// OriginalPathContainsFold applies the ContainsFold predicate on the "original_path" field.
func OriginalPathContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldOriginalPath, v))
}

// PageCountEQ applies the EQ predicate on the "page_count" field.
func PageCountEQ(v int) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldPageCount, v))
}

// PageCountNEQ applies the NEQ predicate on the "page_count" field.
func PageCountNEQ(v int) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldPageCount, v))
}

// PageCountIn applies the In predicate on the "page_count" field.
func PageCountIn(vs ...int) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldPageCount, vs...))
}

// PageCountNotIn applies the NotIn predicate on the "page_count" field.
func PageCountNotIn(vs ...int) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldPageCount, vs...))
}

// PageCountGT applies the GT predicate on the "page_count" field.
func PageCountGT(v int) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldPageCount, v))
}

// PageCountGTE applies the GTE predicate on the "page_count" field.
func PageCountGTE(v int) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldPageCount, v))
}

// PageCountLT applies the LT predicate on the "page_count" field.
func PageCountLT(v int) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldPageCount, v))
}

// PageCountLTE applies the LTE predicate on the "page_count" field.
func PageCountLTE(v int) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldPageCount, v))
}

// PageCountIsNil applies the IsNil predicate on the "page_count" field.
func PageCountIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldPageCount))
}

// PageCountNotNil applies the NotNil predicate on the "page_count" field.
func PageCountNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldPageCount))
}

// WordCountEQ applies the EQ predicate on the "word_count" field.
func WordCountEQ(v int) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldWordCount, v))
}

// WordCountNEQ applies the NEQ predicate on the "word_count" field.
func WordCountNEQ(v int) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldWordCount, v))
}

// WordCountIn applies the In predicate on the "word_count" field.
func WordCountIn(vs ...int) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldWordCount, vs...))
}

// WordCountNotIn applies the NotIn predicate on the "word_count" field.
func WordCountNotIn(vs ...int) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldWordCount, vs...))
}

// WordCountGT applies the GT predicate on the "word_count" field.
func WordCountGT(v int) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldWordCount, v))
}

// WordCountGTE applies the GTE predicate on the "word_count" field.
func WordCountGTE(v int) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldWordCount, v))
}

// WordCountLT applies the LT predicate on the "word_count" field.
func WordCountLT(v int) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldWordCount, v))
}

// WordCountLTE applies the LTE predicate on the "word_count" field.
func WordCountLTE(v int) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldWordCount, v))
}

// ChapterCountEQ applies the EQ predicate on the "chapter_count" field.
func ChapterCountEQ(v int) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldChapterCount, v))
}

// ChapterCountNEQ applies the NEQ predicate on the "chapter_count" field.
func ChapterCountNEQ(v int) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldChapterCount, v))
}

// ChapterCountIn applies the In predicate on the "chapter_count" field.
func ChapterCountIn(vs ...int) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldChapterCount, vs...))
}

// ChapterCountNotIn applies the NotIn predicate on the "chapter_count" field.
func ChapterCountNotIn(vs ...int) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldChapterCount, vs...))
}

// ChapterCountGT applies the GT predicate on the "chapter_count" field.
func ChapterCountGT(v int) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldChapterCount, v))
}

// ChapterCountGTE applies the GTE predicate on the "chapter_count" field.
func ChapterCountGTE(v int) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldChapterCount, v))
}

// ChapterCountLT applies the LT predicate on the "chapter_count" field.
func ChapterCountLT(v int) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldChapterCount, v))
}

// ChapterCountLTE applies the LTE predicate on the "chapter_count" field.
func ChapterCountLTE(v int) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldChapterCount, v))
}

// TableOfContentsIsNil applies the IsNil predicate on the "table_of_contents" field.
func TableOfContentsIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldTableOfContents))
}

// TableOfContentsNotNil applies the NotNil predicate on the "table_of_contents" field.
func TableOfContentsNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldTableOfContents))
}

// SubjectEQ applies the EQ predicate on the "subject" field.
func SubjectEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldSubject, v))
}

// SubjectNEQ applies the NEQ predicate on the "subject" field.
func SubjectNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldSubject, v))
}

// SubjectIn applies the In predicate on the "subject" field.
func SubjectIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldSubject, vs...))
}

// SubjectNotIn applies the NotIn predicate on the "subject" field.
func SubjectNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldSubject, vs...))
}

// SubjectGT applies the GT predicate on the "subject" field.
func SubjectGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldSubject, v))
}

// SubjectGTE applies the GTE predicate on the "subject" field.
func SubjectGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldSubject, v))
}

// SubjectLT applies the LT predicate on the "subject" field.
func SubjectLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldSubject, v))
}

// SubjectLTE applies the LTE predicate on the "subject" field.
func SubjectLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldSubject, v))
}

// SubjectContains applies the Contains predicate on the "subject" field.
func SubjectContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldSubject, v))
}

// SubjectHasPrefix applies the HasPrefix predicate on the "subject" field.
func SubjectHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldSubject, v))
}

// SubjectHasSuffix applies the HasSuffix predicate on the "subject" field.
func SubjectHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldSubject, v))
}

// SubjectIsNil applies the IsNil predicate on the "subject" field.
func SubjectIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldSubject))
}

// SubjectNotNil applies the NotNil predicate on the "subject" field.
func SubjectNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldSubject))
}

// SubjectEqualFold applies the EqualFold predicate on the "subject" field.
func SubjectEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldSubject, v))
}

// SubjectContainsFold applies the ContainsFold predicate on the "subject" field.
func SubjectContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldSubject, v))
}

// KeywordsEQ applies the EQ predicate on the "keywords" field.
func KeywordsEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldKeywords, v))
}

// KeywordsNEQ applies the NEQ predicate on the "keywords" field.
func KeywordsNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldKeywords, v))
}

// KeywordsIn applies the In predicate on the "keywords" field.
func KeywordsIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldKeywords, vs...))
}

// KeywordsNotIn applies the NotIn predicate on the "keywords" field.
func KeywordsNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldKeywords, vs...))
}

// KeywordsGT applies the GT predicate on the "keywords" field.
func KeywordsGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldKeywords, v))
}

// KeywordsGTE applies the GTE predicate on the "keywords" field.
func KeywordsGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldKeywords, v))
}

// KeywordsLT applies the LT predicate on the "keywords" field.
func KeywordsLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldKeywords, v))
}

// KeywordsLTE applies the LTE predicate on the "keywords" field.
func KeywordsLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldKeywords, v))
}

// KeywordsContains applies the Contains predicate on the "keywords" field.
func KeywordsContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldKeywords, v))
}

// KeywordsHasPrefix applies the HasPrefix predicate on the "keywords" field.
func KeywordsHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldKeywords, v))
}

// KeywordsHasSuffix applies the HasSuffix predicate on the "keywords" field.
func KeywordsHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldKeywords, v))
}

// KeywordsIsNil applies the IsNil predicate on the "keywords" field.
func KeywordsIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldKeywords))
}

// KeywordsNotNil applies the NotNil predicate on the "keywords" field.
func KeywordsNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldKeywords))
}

// KeywordsEqualFold applies the EqualFold predicate on the "keywords" field.
func KeywordsEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldKeywords, v))
}

// KeywordsContainsFold applies the ContainsFold predicate on the "keywords" field.
func KeywordsContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldKeywords, v))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldCategory, vs...))
}

// CategoryGT applies the GT predicate on the "category" field.
func CategoryGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldCategory, v))
}

// CategoryGTE applies the GTE predicate on the "category" field.
func CategoryGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldCategory, v))
}

// CategoryLT applies the LT predicate on the "category" field.
func CategoryLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldCategory, v))
}

// CategoryLTE applies the LTE predicate on the "category" field.
func CategoryLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldCategory, v))
}

// CategoryContains applies the Contains predicate on the "category" field.
func CategoryContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldCategory, v))
}

// CategoryHasPrefix applies the HasPrefix predicate on the "category" field.
func CategoryHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldCategory, v))
}

// CategoryHasSuffix applies the HasSuffix predicate on the "category" field.
func CategoryHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldCategory, v))
}

// CategoryIsNil applies the IsNil predicate on the "category" field.
func CategoryIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldCategory))
}

// CategoryNotNil applies the NotNil predicate on the "category" field.
func CategoryNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldCategory))
}

// CategoryEqualFold applies the EqualFold predicate on the "category" field.
func CategoryEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldCategory, v))
}

// CategoryContainsFold applies the ContainsFold predicate on the "category" field.
func CategoryContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldCategory, v))
}

// TagsIsNil applies the IsNil predicate on the "tags" field.
func TagsIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldTags))
}

// TagsNotNil applies the NotNil predicate on the "tags" field.
func TagsNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldTags))
}

// PdfCreationDateEQ applies the EQ predicate on the "pdf_creation_date" field.
func PdfCreationDateEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldPdfCreationDate, v))
}

// PdfCreationDateNEQ applies the NEQ predicate on the "pdf_creation_date" field.
func PdfCreationDateNEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldPdfCreationDate, v))
}

// PdfCreationDateIn applies the In predicate on the "pdf_creation_date" field.
func PdfCreationDateIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldPdfCreationDate, vs...))
}

// PdfCreationDateNotIn applies the NotIn predicate on the "pdf_creation_date" field.
func PdfCreationDateNotIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldPdfCreationDate, vs...))
}

// PdfCreationDateGT applies the GT predicate on the "pdf_creation_date" field.
func PdfCreationDateGT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldPdfCreationDate, v))
}

// PdfCreationDateGTE applies the GTE predicate on the "pdf_creation_date" field.
func PdfCreationDateGTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldPdfCreationDate, v))
}

// PdfCreationDateLT applies the LT predicate on the "pdf_creation_date" field.
func PdfCreationDateLT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldPdfCreationDate, v))
}

// PdfCreationDateLTE applies the LTE predicate on the "pdf_creation_date" field.
func PdfCreationDateLTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldPdfCreationDate, v))
}

// PdfCreationDateIsNil applies the IsNil predicate on the "pdf_creation_date" field.
func PdfCreationDateIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldPdfCreationDate))
}

// PdfCreationDateNotNil applies the NotNil predicate on the "pdf_creation_date" field.
func PdfCreationDateNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldPdfCreationDate))
}

// PdfModDateEQ applies the EQ predicate on the "pdf_mod_date" field.
func PdfModDateEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldPdfModDate, v))
}

// PdfModDateNEQ applies the NEQ predicate on the "pdf_mod_date" field.
func PdfModDateNEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldPdfModDate, v))
}

// PdfModDateIn applies the In predicate on the "pdf_mod_date" field.
func PdfModDateIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldPdfModDate, vs...))
}

// PdfModDateNotIn applies the NotIn predicate on the "pdf_mod_date" field.
func PdfModDateNotIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldPdfModDate, vs...))
}

// PdfModDateGT applies the GT predicate on the "pdf_mod_date" field.
func PdfModDateGT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldPdfModDate, v))
}

// PdfModDateGTE applies the GTE predicate on the "pdf_mod_date" field.
func PdfModDateGTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldPdfModDate, v))
}

// PdfModDateLT applies the LT predicate on the "pdf_mod_date" field.
func PdfModDateLT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldPdfModDate, v))
}

// PdfModDateLTE applies the LTE predicate on the "pdf_mod_date" field.
func PdfModDateLTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldPdfModDate, v))
}

// PdfModDateIsNil applies the IsNil predicate on the "pdf_mod_date" field.
func PdfModDateIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldPdfModDate))
}

// PdfModDateNotNil applies the NotNil predicate on the "pdf_mod_date" field.
func PdfModDateNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldPdfModDate))
}

// PdfCreatorEQ applies the EQ predicate on the "pdf_creator" field.
func PdfCreatorEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldPdfCreator, v))
}

// PdfCreatorNEQ applies the NEQ predicate on the "pdf_creator" field.
func PdfCreatorNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldPdfCreator, v))
}

// PdfCreatorIn applies the In predicate on the "pdf_creator" field.
func PdfCreatorIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldPdfCreator, vs...))
}

// PdfCreatorNotIn applies the NotIn predicate on the "pdf_creator" field.
func PdfCreatorNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldPdfCreator, vs...))
}

// PdfCreatorGT applies the GT predicate on the "pdf_creator" field.
func PdfCreatorGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldPdfCreator, v))
}

// PdfCreatorGTE applies the GTE predicate on the "pdf_creator" field.
func PdfCreatorGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldPdfCreator, v))
}

// PdfCreatorLT applies the LT predicate on the "pdf_creator" field.
func PdfCreatorLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldPdfCreator, v))
}

// PdfCreatorLTE applies the LTE predicate on the "pdf_creator" field.
func PdfCreatorLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldPdfCreator, v))
}

// PdfCreatorContains applies the Contains predicate on the "pdf_creator" field.
func PdfCreatorContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldPdfCreator, v))
}

// PdfCreatorHasPrefix applies the HasPrefix predicate on the "pdf_creator" field.
func PdfCreatorHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldPdfCreator, v))
}

// PdfCreatorHasSuffix applies the HasSuffix predicate on the "pdf_creator" field.
func PdfCreatorHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldPdfCreator, v))
}

// PdfCreatorIsNil applies the IsNil predicate on the "pdf_creator" field.
func PdfCreatorIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldPdfCreator))
}

// PdfCreatorNotNil applies the NotNil predicate on the "pdf_creator" field.
func PdfCreatorNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldPdfCreator))
}

// PdfCreatorEqualFold applies the EqualFold predicate on the "pdf_creator" field.
func PdfCreatorEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldPdfCreator, v))
}

// PdfCreatorContainsFold applies the ContainsFold predicate on the "pdf_creator" field.
func PdfCreatorContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldPdfCreator, v))
}

// PdfProducerEQ applies the EQ predicate on the "pdf_producer" field.
func PdfProducerEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldPdfProducer, v))
}

// PdfProducerNEQ applies the NEQ predicate on the "pdf_producer" field.
func PdfProducerNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldPdfProducer, v))
}

// PdfProducerIn applies the In predicate on the "pdf_producer" field.
func PdfProducerIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldPdfProducer, vs...))
}

// PdfProducerNotIn applies the NotIn predicate on the "pdf_producer" field.
func PdfProducerNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldPdfProducer, vs...))
}

// PdfProducerGT applies the GT predicate on the "pdf_producer" field.
func PdfProducerGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldPdfProducer, v))
}

// PdfProducerGTE applies the GTE predicate on the "pdf_producer" field.
func PdfProducerGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldPdfProducer, v))
}

// PdfProducerLT applies the LT predicate on the "pdf_producer" field.
func PdfProducerLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldPdfProducer, v))
}

// PdfProducerLTE applies the LTE predicate on the "pdf_producer" field.
func PdfProducerLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldPdfProducer, v))
}

// PdfProducerContains applies the Contains predicate on the "pdf_producer" field.
func PdfProducerContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldPdfProducer, v))
}

// PdfProducerHasPrefix applies the HasPrefix predicate on the "pdf_producer" field.
func PdfProducerHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldPdfProducer, v))
}

// PdfProducerHasSuffix applies the HasSuffix predicate on the "pdf_producer" field.
func PdfProducerHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldPdfProducer, v))
}

// PdfProducerIsNil applies the IsNil predicate on the "pdf_producer" field.
func PdfProducerIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldPdfProducer))
}

// PdfProducerNotNil applies the NotNil predicate on the "pdf_producer" field.
func PdfProducerNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldPdfProducer))
}

// PdfProducerEqualFold applies the EqualFold predicate on the "pdf_producer" field.
func PdfProducerEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldPdfProducer, v))
}

// PdfProducerContainsFold applies the ContainsFold predicate on the "pdf_producer" field.
func PdfProducerContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldPdfProducer, v))
}

// IsbnEQ applies the EQ predicate on the "isbn" field.
func IsbnEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldIsbn, v))
}

// IsbnNEQ applies the NEQ predicate on the "isbn" field.
func IsbnNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldIsbn, v))
}

// IsbnIn applies the In predicate on the "isbn" field.
func IsbnIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldIsbn, vs...))
}

// IsbnNotIn applies the NotIn predicate on the "isbn" field.
func IsbnNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldIsbn, vs...))
}

// IsbnGT applies the GT predicate on the "isbn" field.
func IsbnGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldIsbn, v))
}

// IsbnGTE applies the GTE predicate on the "isbn" field.
func IsbnGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldIsbn, v))
}

// IsbnLT applies the LT predicate on the "isbn" field.
func IsbnLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldIsbn, v))
}

// IsbnLTE applies the LTE predicate on the "isbn" field.
func IsbnLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldIsbn, v))
}

// IsbnContains applies the Contains predicate on the "isbn" field.
func IsbnContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldIsbn, v))
}

// IsbnHasPrefix applies the HasPrefix predicate on the "isbn" field.
func IsbnHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldIsbn, v))
}

// IsbnHasSuffix applies the HasSuffix predicate on the "isbn" field.
func IsbnHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldIsbn, v))
}

// IsbnIsNil applies the IsNil predicate on the "isbn" field.
func IsbnIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldIsbn))
}

// IsbnNotNil applies the NotNil predicate on the "isbn" field.
func IsbnNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldIsbn))
}

// IsbnEqualFold applies the EqualFold predicate on the "isbn" field.
func IsbnEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldIsbn, v))
}

// IsbnContainsFold applies the ContainsFold predicate on the "isbn" field.
func IsbnContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldIsbn, v))
}

// PublisherEQ applies the EQ predicate on the "publisher" field.
func PublisherEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldPublisher, v))
}

// PublisherNEQ applies the NEQ predicate on the "publisher" field.
func PublisherNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldPublisher, v))
}

// PublisherIn applies the In predicate on the "publisher" field.
func PublisherIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldPublisher, vs...))
}

// PublisherNotIn applies the NotIn predicate on the "publisher" field.
func PublisherNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldPublisher, vs...))
}

// PublisherGT applies the GT predicate on the "publisher" field.
func PublisherGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldPublisher, v))
}

// PublisherGTE applies the GTE predicate on the "publisher" field.
func PublisherGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldPublisher, v))
}

// PublisherLT applies the LT predicate on the "publisher" field.
func PublisherLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldPublisher, v))
}

// PublisherLTE applies the LTE predicate on the "publisher" field.
func PublisherLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldPublisher, v))
}

// PublisherContains applies the Contains predicate on the "publisher" field.
func PublisherContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldPublisher, v))
}

// PublisherHasPrefix applies the HasPrefix predicate on the "publisher" field.
func PublisherHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldPublisher, v))
}

// PublisherHasSuffix applies the HasSuffix predicate on the "publisher" field.
func PublisherHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldPublisher, v))
}

// PublisherIsNil applies the IsNil predicate on the "publisher" field.
func PublisherIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldPublisher))
}

// PublisherNotNil applies the NotNil predicate on the "publisher" field.
func PublisherNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldPublisher))
}

// PublisherEqualFold applies the EqualFold predicate on the "publisher" field.
func PublisherEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldPublisher, v))
}

// PublisherContainsFold applies the ContainsFold predicate on the "publisher" field.
func PublisherContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldPublisher, v))
}

// PublicationYearEQ applies the EQ predicate on the "publication_year" field.
func PublicationYearEQ(v int) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldPublicationYear, v))
}

// PublicationYearNEQ applies the NEQ predicate on the "publication_year" field.
func PublicationYearNEQ(v int) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldPublicationYear, v))
}

// PublicationYearIn applies the In predicate on the "publication_year" field.
func PublicationYearIn(vs ...int) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldPublicationYear, vs...))
}

// PublicationYearNotIn applies the NotIn predicate on the "publication_year" field.
func PublicationYearNotIn(vs ...int) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldPublicationYear, vs...))
}

// PublicationYearGT applies the GT predicate on the "publication_year" field.
func PublicationYearGT(v int) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldPublicationYear, v))
}

// PublicationYearGTE applies the GTE predicate on the "publication_year" field.
func PublicationYearGTE(v int) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldPublicationYear, v))
}

// PublicationYearLT applies the LT predicate on the "publication_year" field.
func PublicationYearLT(v int) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldPublicationYear, v))
}

// PublicationYearLTE applies the LTE predicate on the "publication_year" field.
func PublicationYearLTE(v int) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldPublicationYear, v))
}

// PublicationYearIsNil applies the IsNil predicate on the "publication_year" field.
func PublicationYearIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldPublicationYear))
}

// PublicationYearNotNil applies the NotNil predicate on the "publication_year" field.
func PublicationYearNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldPublicationYear))
}

// LanguageEQ applies the EQ predicate on the "language" field.
func LanguageEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldLanguage, v))
}

// LanguageNEQ applies the NEQ predicate on the "language" field.
func LanguageNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldLanguage, v))
}

// LanguageIn applies the In predicate on the "language" field.
func LanguageIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldLanguage, vs...))
}

// LanguageNotIn applies the NotIn predicate on the "language" field.
func LanguageNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldLanguage, vs...))
}

// LanguageGT applies the GT predicate on the "language" field.
func LanguageGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldLanguage, v))
}

// LanguageGTE applies the GTE predicate on the "language" field.
func LanguageGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldLanguage, v))
}

// LanguageLT applies the LT predicate on the "language" field.
func LanguageLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldLanguage, v))
}

// LanguageLTE applies the LTE predicate on the "language" field.
func LanguageLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldLanguage, v))
}

// LanguageContains applies the Contains predicate on the "language" field.
func LanguageContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldLanguage, v))
}

// LanguageHasPrefix applies the HasPrefix predicate on the "language" field.
func LanguageHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldLanguage, v))
}

// LanguageHasSuffix applies the HasSuffix predicate on the "language" field.
func LanguageHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldLanguage, v))
}

// LanguageEqualFold applies the EqualFold predicate on the "language" field.
func LanguageEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldLanguage, v))
}

// LanguageContainsFold applies the ContainsFold predicate on the "language" field.
func LanguageContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldLanguage, v))
}

// ImageCountEQ applies the EQ predicate on the "image_count" field.
func ImageCountEQ(v int) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldImageCount, v))
}

// ImageCountNEQ applies the NEQ predicate on the "image_count" field.
func ImageCountNEQ(v int) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldImageCount, v))
}

// ImageCountIn applies the In predicate on the "image_count" field.
func ImageCountIn(vs ...int) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldImageCount, vs...))
}

// ImageCountNotIn applies the NotIn predicate on the "image_count" field.
func ImageCountNotIn(vs ...int) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldImageCount, vs...))
}

// ImageCountGT applies the GT predicate on the "image_count" field.
func ImageCountGT(v int) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldImageCount, v))
}

// ImageCountGTE applies the GTE predicate on the "image_count" field.
func ImageCountGTE(v int) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldImageCount, v))
}

// ImageCountLT applies the LT predicate on the "image_count" field.
func ImageCountLT(v int) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldImageCount, v))
}

// ImageCountLTE applies the LTE predicate on the "image_count" field.
func ImageCountLTE(v int) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldImageCount, v))
}

// HasImagesEQ applies the EQ predicate on the "has_images" field.
func HasImagesEQ(v bool) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldHasImages, v))
}

// HasImagesNEQ applies the NEQ predicate on the "has_images" field.
func HasImagesNEQ(v bool) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldHasImages, v))
}

// AddedAtEQ applies the EQ predicate on the "added_at" field.
func AddedAtEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldAddedAt, v))
}

// AddedAtNEQ applies the NEQ predicate on the "added_at" field.
func AddedAtNEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldAddedAt, v))
}

// AddedAtIn applies the In predicate on the "added_at" field.
func AddedAtIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldAddedAt, vs...))
}

// AddedAtNotIn applies the NotIn predicate on the "added_at" field.
func AddedAtNotIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldAddedAt, vs...))
}

// AddedAtGT applies the GT predicate on the "added_at" field.
func AddedAtGT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldAddedAt, v))
}

// AddedAtGTE applies the GTE predicate on the "added_at" field.
func AddedAtGTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldAddedAt, v))
}

// AddedAtLT applies the LT predicate on the "added_at" field.
func AddedAtLT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldAddedAt, v))
}

// AddedAtLTE applies the LTE predicate on the "added_at" field.
func AddedAtLTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldAddedAt, v))
}

// ModifiedAtEQ applies the EQ predicate on the "modified_at" field.
func ModifiedAtEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldModifiedAt, v))
}

// ModifiedAtNEQ applies the NEQ predicate on the "modified_at" field.
func ModifiedAtNEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldModifiedAt, v))
}

// ModifiedAtIn applies the In predicate on the "modified_at" field.
func ModifiedAtIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldModifiedAt, vs...))
}

// ModifiedAtNotIn applies the NotIn predicate on the "modified_at" field.
func ModifiedAtNotIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldModifiedAt, vs...))
}

// ModifiedAtGT applies the GT predicate on the "modified_at" field.
func ModifiedAtGT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldModifiedAt, v))
}

// ModifiedAtGTE applies the GTE predicate on the "modified_at" field.
func ModifiedAtGTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldModifiedAt, v))
}

// ModifiedAtLT applies the LT predicate on the "modified_at" field.
func ModifiedAtLT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldModifiedAt, v))
}

// ModifiedAtLTE applies the LTE predicate on the "modified_at" field.
func ModifiedAtLTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldModifiedAt, v))
}

// HasAttachments applies the HasEdge predicate on the "attachments" edge.
func HasAttachments() predicate.Document {
	return predicate.Document(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, AttachmentsTable, AttachmentsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAttachmentsWith applies the HasEdge predicate on the "attachments" edge with a given conditions (other predicates).
func HasAttachmentsWith(preds ...predicate.DocumentImage) predicate.Document {
	return predicate.Document(func(s *sql.Selector) {
		step := newAttachmentsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Document) predicate.Document {
	return predicate.Document(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Document) predicate.Document {
	return predicate.Document(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Document) predicate.Document {
	return predicate.Document(sql.NotPredicates(p))
}
