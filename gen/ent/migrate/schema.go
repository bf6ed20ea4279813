// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// DocumentsColumns holds the columns for the "documents" table.
	DocumentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "title", Type: field.TypeString, Size: 500},
		{Name: "author", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "source_type", Type: field.TypeString},
		{Name: "content_hash", Type: field.TypeString, Unique: true, Size: 64},
		{Name: "markdown_path", Type: field.TypeString, Size: 1000},
		{Name: "original_path", Type: field.TypeString, Nullable: true, Size: 1000},
		{Name: "page_count", Type: field.TypeInt, Nullable: true},
		{Name: "word_count", Type: field.TypeInt, Default: 0},
		{Name: "chapter_count", Type: field.TypeInt, Default: 0},
		{Name: "table_of_contents", Type: field.TypeJSON, Nullable: true},
		{Name: "subject", Type: field.TypeString, Nullable: true, Size: 500},
		{Name: "keywords", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "category", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "tags", Type: field.TypeJSON, Nullable: true},
		{Name: "pdf_creation_date", Type: field.TypeTime, Nullable: true},
		{Name: "pdf_mod_date", Type: field.TypeTime, Nullable: true},
		{Name: "pdf_creator", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "pdf_producer", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "isbn", Type: field.TypeString, Nullable: true, Size: 20},
		{Name: "publisher", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "publication_year", Type: field.TypeInt, Nullable: true},
		{Name: "language", Type: field.TypeString, Size: 10, Default: "en"},
		{Name: "image_count", Type: field.TypeInt, Default: 0},
		{Name: "has_images", Type: field.TypeBool, Default: false},
		{Name: "added_at", Type: field.TypeTime},
		{Name: "modified_at", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "timestamptz"}},
	}
	// DocumentsTable holds the schema information for the "documents" table.
	DocumentsTable = &schema.Table{
		Name:       "documents",
		Columns:    DocumentsColumns,
		PrimaryKey: []*schema.Column{DocumentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "document_title",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[1]},
			},
			{
				Name:    "document_author",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[2]},
			},
			{
				Name:    "document_source_type",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[3]},
			},
			{
				Name:    "document_category",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[13]},
			},
			{
				Name:    "document_has_images",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[24]},
			},
		},
	}
	// DocumentImagesColumns holds the columns for the "document_images" table.
	DocumentImagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "page_number", Type: field.TypeInt},
		{Name: "printed_page_number", Type: field.TypeInt, Nullable: true},
		{Name: "xref", Type: field.TypeInt},
		{Name: "file_path", Type: field.TypeString, Size: 1000},
		{Name: "width", Type: field.TypeInt},
		{Name: "height", Type: field.TypeInt},
		{Name: "format", Type: field.TypeString, Size: 10},
		{Name: "colorspace", Type: field.TypeString, Nullable: true, Size: 20},
		{Name: "has_transparency", Type: field.TypeBool, Default: false},
		{Name: "file_size", Type: field.TypeInt, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "document_id", Type: field.TypeInt},
	}
	// DocumentImagesTable holds the schema information for the "document_images" table.
	DocumentImagesTable = &schema.Table{
		Name:       "document_images",
		Columns:    DocumentImagesColumns,
		PrimaryKey: []*schema.Column{DocumentImagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "document_images_documents_attachments",
				Columns:    []*schema.Column{DocumentImagesColumns[12]},
				RefColumns: []*schema.Column{DocumentsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "documentimage_document_id_page_number",
				Unique:  false,
				Columns: []*schema.Column{DocumentImagesColumns[12], DocumentImagesColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		DocumentsTable,
		DocumentImagesTable,
	}
)

func init() {
	DocumentsTable.Annotation = &entsql.Annotation{
		Table: "documents",
	}
	DocumentImagesTable.ForeignKeys[0].RefTable = DocumentsTable
	DocumentImagesTable.Annotation = &entsql.Annotation{
		Table: "document_images",
	}
}
