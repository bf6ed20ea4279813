// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/candlekeep/candlekeep/db/ent/schema"
	"github.com/candlekeep/candlekeep/gen/ent/document"
	"github.com/candlekeep/candlekeep/gen/ent/documentimage"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	documentFields := schema.Document{}.Fields()
	_ = documentFields
	// documentDescTitle is the schema descriptor for title field.
	documentDescTitle := documentFields[0].Descriptor()
	// document.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	document.TitleValidator = func() func(string) error {
		validators := documentDescTitle.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(title string) error {
			for _, fn := range fns {
				if err := fn(title); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// documentDescAuthor is the schema descriptor for author field.
	documentDescAuthor := documentFields[1].Descriptor()
	// document.AuthorValidator is a validator for the "author" field. It is called by the builders before save.
	document.AuthorValidator = documentDescAuthor.Validators[0].(func(string) error)
	// documentDescSourceType is the schema descriptor for source_type field.
	documentDescSourceType := documentFields[2].Descriptor()
	// document.SourceTypeValidator is a validator for the "source_type" field. It is called by the builders before save.
	document.SourceTypeValidator = documentDescSourceType.Validators[0].(func(string) error)
	// documentDescContentHash is the schema descriptor for content_hash field.
	documentDescContentHash := documentFields[3].Descriptor()
	// document.ContentHashValidator is a validator for the "content_hash" field. It is called by the builders before save.
	document.ContentHashValidator = func() func(string) error {
		validators := documentDescContentHash.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
			validators[2].(func(string) error),
		}
		return func(content_hash string) error {
			for _, fn := range fns {
				if err := fn(content_hash); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// documentDescMarkdownPath is the schema descriptor for markdown_path field.
	documentDescMarkdownPath := documentFields[4].Descriptor()
	// document.MarkdownPathValidator is a validator for the "markdown_path" field. It is called by the builders before save.
	document.MarkdownPathValidator = func() func(string) error {
		validators := documentDescMarkdownPath.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(markdown_path string) error {
			for _, fn := range fns {
				if err := fn(markdown_path); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// documentDescOriginalPath is the schema descriptor for original_path field.
	documentDescOriginalPath := documentFields[5].Descriptor()
	// document.OriginalPathValidator is a validator for the "original_path" field. It is called by the builders before save.
	document.OriginalPathValidator = documentDescOriginalPath.Validators[0].(func(string) error)
	// documentDescWordCount is the schema descriptor for word_count field.
	documentDescWordCount := documentFields[7].Descriptor()
	// document.DefaultWordCount holds the default value on creation for the word_count field.
	document.DefaultWordCount = documentDescWordCount.Default.(int)
	// documentDescChapterCount is the schema descriptor for chapter_count field.
	documentDescChapterCount := documentFields[8].Descriptor()
	// document.DefaultChapterCount holds the default value on creation for the chapter_count field.
	document.DefaultChapterCount = documentDescChapterCount.Default.(int)
	// documentDescSubject is the schema descriptor for subject field.
	documentDescSubject := documentFields[10].Descriptor()
	// document.SubjectValidator is a validator for the "subject" field. It is called by the builders before save.
	document.SubjectValidator = documentDescSubject.Validators[0].(func(string) error)
	// documentDescCategory is the schema descriptor for category field.
	documentDescCategory := documentFields[12].Descriptor()
	// document.CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	document.CategoryValidator = documentDescCategory.Validators[0].(func(string) error)
	// documentDescPdfCreator is the schema descriptor for pdf_creator field.
	documentDescPdfCreator := documentFields[16].Descriptor()
	// document.PdfCreatorValidator is a validator for the "pdf_creator" field. It is called by the builders before save.
	document.PdfCreatorValidator = documentDescPdfCreator.Validators[0].(func(string) error)
	// documentDescPdfProducer is the schema descriptor for pdf_producer field.
	documentDescPdfProducer := documentFields[17].Descriptor()
	// document.PdfProducerValidator is a validator for the "pdf_producer" field. It is called by the builders before save.
	document.PdfProducerValidator = documentDescPdfProducer.Validators[0].(func(string) error)
	// documentDescIsbn is the schema descriptor for isbn field.
	documentDescIsbn := documentFields[18].Descriptor()
	// document.IsbnValidator is a validator for the "isbn" field. It is called by the builders before save.
	document.IsbnValidator = documentDescIsbn.Validators[0].(func(string) error)
	// documentDescPublisher is the schema descriptor for publisher field.
	documentDescPublisher := documentFields[19].Descriptor()
	// document.PublisherValidator is a validator for the "publisher" field. It is called by the builders before save.
	document.PublisherValidator = documentDescPublisher.Validators[0].(func(string) error)
	// documentDescLanguage is the schema descriptor for language field.
	documentDescLanguage := documentFields[21].Descriptor()
	// document.DefaultLanguage holds the default value on creation for the language field.
	document.DefaultLanguage = documentDescLanguage.Default.(string)
	// document.LanguageValidator is a validator for the "language" field. It is called by the builders before save.
	document.LanguageValidator = documentDescLanguage.Validators[0].(func(string) error)
	// documentDescImageCount is the schema descriptor for image_count field.
	documentDescImageCount := documentFields[22].Descriptor()
	// document.DefaultImageCount holds the default value on creation for the image_count field.
	document.DefaultImageCount = documentDescImageCount.Default.(int)
	// document.ImageCountValidator is a validator for the "image_count" field. It is called by the builders before save.
	document.ImageCountValidator = documentDescImageCount.Validators[0].(func(int) error)
	// documentDescHasImages is the schema descriptor for has_images field.
	documentDescHasImages := documentFields[23].Descriptor()
	// document.DefaultHasImages holds the default value on creation for the has_images field.
	document.DefaultHasImages = documentDescHasImages.Default.(bool)
	// documentDescAddedAt is the schema descriptor for added_at field.
	documentDescAddedAt := documentFields[24].Descriptor()
	// document.DefaultAddedAt holds the default value on creation for the added_at field.
	document.DefaultAddedAt = documentDescAddedAt.Default.(func() time.Time)
	// documentDescModifiedAt is the schema descriptor for modified_at field.
	documentDescModifiedAt := documentFields[25].Descriptor()
	// document.DefaultModifiedAt holds the default value on creation for the modified_at field.
	document.DefaultModifiedAt = documentDescModifiedAt.Default.(func() time.Time)
	// document.UpdateDefaultModifiedAt holds the default value on update for the modified_at field.
	document.UpdateDefaultModifiedAt = documentDescModifiedAt.UpdateDefault.(func() time.Time)
	documentimageFields := schema.DocumentImage{}.Fields()
	_ = documentimageFields
	// documentimageDescPageNumber is the schema descriptor for page_number field.
	documentimageDescPageNumber := documentimageFields[1].Descriptor()
	// documentimage.PageNumberValidator is a validator for the "page_number" field. It is called by the builders before save.
	documentimage.PageNumberValidator = documentimageDescPageNumber.Validators[0].(func(int) error)
	// documentimageDescFilePath is the schema descriptor for file_path field.
	documentimageDescFilePath := documentimageFields[4].Descriptor()
	// documentimage.FilePathValidator is a validator for the "file_path" field. It is called by the builders before save.
	documentimage.FilePathValidator = func() func(string) error {
		validators := documentimageDescFilePath.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(file_path string) error {
			for _, fn := range fns {
				if err := fn(file_path); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// documentimageDescWidth is the schema descriptor for width field.
	documentimageDescWidth := documentimageFields[5].Descriptor()
	// documentimage.WidthValidator is a validator for the "width" field. It is called by the builders before save.
	documentimage.WidthValidator = documentimageDescWidth.Validators[0].(func(int) error)
	// documentimageDescHeight is the schema descriptor for height field.
	documentimageDescHeight := documentimageFields[6].Descriptor()
	// documentimage.HeightValidator is a validator for the "height" field. It is called by the builders before save.
	documentimage.HeightValidator = documentimageDescHeight.Validators[0].(func(int) error)
	// documentimageDescFormat is the schema descriptor for format field.
	documentimageDescFormat := documentimageFields[7].Descriptor()
	// documentimage.FormatValidator is a validator for the "format" field. It is called by the builders before save.
	documentimage.FormatValidator = func() func(string) error {
		validators := documentimageDescFormat.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(format string) error {
			for _, fn := range fns {
				if err := fn(format); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// documentimageDescColorspace is the schema descriptor for colorspace field.
	documentimageDescColorspace := documentimageFields[8].Descriptor()
	// documentimage.ColorspaceValidator is a validator for the "colorspace" field. It is called by the builders before save.
	documentimage.ColorspaceValidator = documentimageDescColorspace.Validators[0].(func(string) error)
	// documentimageDescHasTransparency is the schema descriptor for has_transparency field.
	documentimageDescHasTransparency := documentimageFields[9].Descriptor()
	// documentimage.DefaultHasTransparency holds the default value on creation for the has_transparency field.
	documentimage.DefaultHasTransparency = documentimageDescHasTransparency.Default.(bool)
	// documentimageDescCreatedAt is the schema descriptor for created_at field.
	documentimageDescCreatedAt := documentimageFields[11].Descriptor()
	// documentimage.DefaultCreatedAt holds the default value on creation for the created_at field.
	documentimage.DefaultCreatedAt = documentimageDescCreatedAt.Default.(func() time.Time)
}
