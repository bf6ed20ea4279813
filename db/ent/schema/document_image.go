package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DocumentImage stores metadata about one image extracted from a
// document's source file. Rows are exclusively owned by a document and
// cascade-deleted with it.
type DocumentImage struct {
	ent.Schema
}

func (DocumentImage) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "document_images"},
	}
}

func (DocumentImage) Fields() []ent.Field {
	return []ent.Field{
		// explicit FK so we can define the composite index
		field.Int("document_id"),
		// 1-based canonical page number
		field.Int("page_number").Positive(),
		// number printed on the page, detected heuristically; may be absent
		field.Int("printed_page_number").Optional().Nillable(),
		// source object reference, kept for potential source-level dedup
		field.Int("xref"),
		field.String("file_path").NotEmpty().MaxLen(1000),
		field.Int("width").NonNegative(),
		field.Int("height").NonNegative(),
		field.String("format").NotEmpty().MaxLen(10),
		field.String("colorspace").Optional().MaxLen(20),
		field.Bool("has_transparency").Default(false),
		field.Int("file_size").Optional().Nillable(),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (DocumentImage) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY images -> ONE document
		edge.From("document", Document.Type).
			Ref("attachments").
			Field("document_id").
			Required().
			Unique(),
	}
}

func (DocumentImage) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("document_id", "page_number"),
	}
}
