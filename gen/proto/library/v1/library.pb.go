// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: library/v1/library.proto

package libraryv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type IngestFileRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// Absolute path of the source file on the server host.
	Path string `protobuf:"bytes,1,opt,name=path,proto3" json:"path,omitempty"`
	// Optional overrides for extracted metadata.
	Title    string   `protobuf:"bytes,2,opt,name=title,proto3" json:"title,omitempty"`
	Author   string   `protobuf:"bytes,3,opt,name=author,proto3" json:"author,omitempty"`
	Category string   `protobuf:"bytes,4,opt,name=category,proto3" json:"category,omitempty"`
	Tags     []string `protobuf:"bytes,5,rep,name=tags,proto3" json:"tags,omitempty"`
	// Copy the original PDF into the library's originals directory.
	KeepOriginal  bool `protobuf:"varint,6,opt,name=keep_original,json=keepOriginal,proto3" json:"keep_original,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IngestFileRequest) Reset() {
	*x = IngestFileRequest{}
	mi := &file_library_v1_library_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestFileRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestFileRequest) ProtoMessage() {}

func (x *IngestFileRequest) ProtoReflect() protoreflect.Message {
	mi := &file_library_v1_library_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestFileRequest.ProtoReflect.Descriptor instead.
func (*IngestFileRequest) Descriptor() ([]byte, []int) {
	return file_library_v1_library_proto_rawDescGZIP(), []int{0}
}

func (x *IngestFileRequest) GetPath() string {
	if x != nil {
		return x.Path
	}
	return ""
}

func (x *IngestFileRequest) GetTitle() string {
	if x != nil {
		return x.Title
	}
	return ""
}

func (x *IngestFileRequest) GetAuthor() string {
	if x != nil {
		return x.Author
	}
	return ""
}

func (x *IngestFileRequest) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

func (x *IngestFileRequest) GetTags() []string {
	if x != nil {
		return x.Tags
	}
	return nil
}

func (x *IngestFileRequest) GetKeepOriginal() bool {
	if x != nil {
		return x.KeepOriginal
	}
	return false
}

type Document struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            int64                  `protobuf:"varint,1,opt,name=id,proto3" json:"id,omitempty"`
	Title         string                 `protobuf:"bytes,2,opt,name=title,proto3" json:"title,omitempty"`
	Author        string                 `protobuf:"bytes,3,opt,name=author,proto3" json:"author,omitempty"`
	SourceType    string                 `protobuf:"bytes,4,opt,name=source_type,json=sourceType,proto3" json:"source_type,omitempty"`
	ContentHash   string                 `protobuf:"bytes,5,opt,name=content_hash,json=contentHash,proto3" json:"content_hash,omitempty"`
	MarkdownPath  string                 `protobuf:"bytes,6,opt,name=markdown_path,json=markdownPath,proto3" json:"markdown_path,omitempty"`
	OriginalPath  string                 `protobuf:"bytes,7,opt,name=original_path,json=originalPath,proto3" json:"original_path,omitempty"`
	PageCount     int32                  `protobuf:"varint,8,opt,name=page_count,json=pageCount,proto3" json:"page_count,omitempty"`
	WordCount     int32                  `protobuf:"varint,9,opt,name=word_count,json=wordCount,proto3" json:"word_count,omitempty"`
	ChapterCount  int32                  `protobuf:"varint,10,opt,name=chapter_count,json=chapterCount,proto3" json:"chapter_count,omitempty"`
	Category      string                 `protobuf:"bytes,11,opt,name=category,proto3" json:"category,omitempty"`
	Tags          []string               `protobuf:"bytes,12,rep,name=tags,proto3" json:"tags,omitempty"`
	ImageCount    int32                  `protobuf:"varint,13,opt,name=image_count,json=imageCount,proto3" json:"image_count,omitempty"`
	HasImages     bool                   `protobuf:"varint,14,opt,name=has_images,json=hasImages,proto3" json:"has_images,omitempty"`
	AddedAt       string                 `protobuf:"bytes,15,opt,name=added_at,json=addedAt,proto3" json:"added_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Document) Reset() {
	*x = Document{}
	mi := &file_library_v1_library_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Document) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Document) ProtoMessage() {}

func (x *Document) ProtoReflect() protoreflect.Message {
	mi := &file_library_v1_library_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Document.ProtoReflect.Descriptor instead.
func (*Document) Descriptor() ([]byte, []int) {
	return file_library_v1_library_proto_rawDescGZIP(), []int{1}
}

func (x *Document) GetId() int64 {
	if x != nil {
		return x.Id
	}
	return 0
}

func (x *Document) GetTitle() string {
	if x != nil {
		return x.Title
	}
	return ""
}

func (x *Document) GetAuthor() string {
	if x != nil {
		return x.Author
	}
	return ""
}

func (x *Document) GetSourceType() string {
	if x != nil {
		return x.SourceType
	}
	return ""
}

func (x *Document) GetContentHash() string {
	if x != nil {
		return x.ContentHash
	}
	return ""
}

func (x *Document) GetMarkdownPath() string {
	if x != nil {
		return x.MarkdownPath
	}
	return ""
}

func (x *Document) GetOriginalPath() string {
	if x != nil {
		return x.OriginalPath
	}
	return ""
}

func (x *Document) GetPageCount() int32 {
	if x != nil {
		return x.PageCount
	}
	return 0
}

func (x *Document) GetWordCount() int32 {
	if x != nil {
		return x.WordCount
	}
	return 0
}

func (x *Document) GetChapterCount() int32 {
	if x != nil {
		return x.ChapterCount
	}
	return 0
}

func (x *Document) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

func (x *Document) GetTags() []string {
	if x != nil {
		return x.Tags
	}
	return nil
}

func (x *Document) GetImageCount() int32 {
	if x != nil {
		return x.ImageCount
	}
	return 0
}

func (x *Document) GetHasImages() bool {
	if x != nil {
		return x.HasImages
	}
	return false
}

func (x *Document) GetAddedAt() string {
	if x != nil {
		return x.AddedAt
	}
	return ""
}

type IngestFileResponse struct {
	state    protoimpl.MessageState `protogen:"open.v1"`
	Document *Document              `protobuf:"bytes,1,opt,name=document,proto3" json:"document,omitempty"`
	// True when the file's content hash matched an existing document;
	// document then describes the existing record.
	Deduplicated  bool     `protobuf:"varint,2,opt,name=deduplicated,proto3" json:"deduplicated,omitempty"`
	Warnings      []string `protobuf:"bytes,3,rep,name=warnings,proto3" json:"warnings,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IngestFileResponse) Reset() {
	*x = IngestFileResponse{}
	mi := &file_library_v1_library_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestFileResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestFileResponse) ProtoMessage() {}

func (x *IngestFileResponse) ProtoReflect() protoreflect.Message {
	mi := &file_library_v1_library_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestFileResponse.ProtoReflect.Descriptor instead.
func (*IngestFileResponse) Descriptor() ([]byte, []int) {
	return file_library_v1_library_proto_rawDescGZIP(), []int{2}
}

func (x *IngestFileResponse) GetDocument() *Document {
	if x != nil {
		return x.Document
	}
	return nil
}

func (x *IngestFileResponse) GetDeduplicated() bool {
	if x != nil {
		return x.Deduplicated
	}
	return false
}

func (x *IngestFileResponse) GetWarnings() []string {
	if x != nil {
		return x.Warnings
	}
	return nil
}

type IngestDirectoryRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RootPath      string                 `protobuf:"bytes,1,opt,name=root_path,json=rootPath,proto3" json:"root_path,omitempty"`
	SkipHidden    bool                   `protobuf:"varint,2,opt,name=skip_hidden,json=skipHidden,proto3" json:"skip_hidden,omitempty"`
	KeepOriginal  bool                   `protobuf:"varint,3,opt,name=keep_original,json=keepOriginal,proto3" json:"keep_original,omitempty"`
	Category      string                 `protobuf:"bytes,4,opt,name=category,proto3" json:"category,omitempty"`
	Tags          []string               `protobuf:"bytes,5,rep,name=tags,proto3" json:"tags,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IngestDirectoryRequest) Reset() {
	*x = IngestDirectoryRequest{}
	mi := &file_library_v1_library_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestDirectoryRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestDirectoryRequest) ProtoMessage() {}

func (x *IngestDirectoryRequest) ProtoReflect() protoreflect.Message {
	mi := &file_library_v1_library_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestDirectoryRequest.ProtoReflect.Descriptor instead.
func (*IngestDirectoryRequest) Descriptor() ([]byte, []int) {
	return file_library_v1_library_proto_rawDescGZIP(), []int{3}
}

func (x *IngestDirectoryRequest) GetRootPath() string {
	if x != nil {
		return x.RootPath
	}
	return ""
}

func (x *IngestDirectoryRequest) GetSkipHidden() bool {
	if x != nil {
		return x.SkipHidden
	}
	return false
}

func (x *IngestDirectoryRequest) GetKeepOriginal() bool {
	if x != nil {
		return x.KeepOriginal
	}
	return false
}

func (x *IngestDirectoryRequest) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

func (x *IngestDirectoryRequest) GetTags() []string {
	if x != nil {
		return x.Tags
	}
	return nil
}

type FileResult struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Path          string                 `protobuf:"bytes,1,opt,name=path,proto3" json:"path,omitempty"`
	DocumentId    int64                  `protobuf:"varint,2,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	Deduplicated  bool                   `protobuf:"varint,3,opt,name=deduplicated,proto3" json:"deduplicated,omitempty"`
	Warnings      []string               `protobuf:"bytes,4,rep,name=warnings,proto3" json:"warnings,omitempty"`
	Error         string                 `protobuf:"bytes,5,opt,name=error,proto3" json:"error,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *FileResult) Reset() {
	*x = FileResult{}
	mi := &file_library_v1_library_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *FileResult) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*FileResult) ProtoMessage() {}

func (x *FileResult) ProtoReflect() protoreflect.Message {
	mi := &file_library_v1_library_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use FileResult.ProtoReflect.Descriptor instead.
func (*FileResult) Descriptor() ([]byte, []int) {
	return file_library_v1_library_proto_rawDescGZIP(), []int{4}
}

func (x *FileResult) GetPath() string {
	if x != nil {
		return x.Path
	}
	return ""
}

func (x *FileResult) GetDocumentId() int64 {
	if x != nil {
		return x.DocumentId
	}
	return 0
}

func (x *FileResult) GetDeduplicated() bool {
	if x != nil {
		return x.Deduplicated
	}
	return false
}

func (x *FileResult) GetWarnings() []string {
	if x != nil {
		return x.Warnings
	}
	return nil
}

func (x *FileResult) GetError() string {
	if x != nil {
		return x.Error
	}
	return ""
}

type IngestDirectoryResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Scanned       uint32                 `protobuf:"varint,1,opt,name=scanned,proto3" json:"scanned,omitempty"`
	Matched       uint32                 `protobuf:"varint,2,opt,name=matched,proto3" json:"matched,omitempty"`
	Succeeded     uint32                 `protobuf:"varint,3,opt,name=succeeded,proto3" json:"succeeded,omitempty"`
	Deduplicated  uint32                 `protobuf:"varint,4,opt,name=deduplicated,proto3" json:"deduplicated,omitempty"`
	Failed        uint32                 `protobuf:"varint,5,opt,name=failed,proto3" json:"failed,omitempty"`
	Results       []*FileResult          `protobuf:"bytes,6,rep,name=results,proto3" json:"results,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IngestDirectoryResponse) Reset() {
	*x = IngestDirectoryResponse{}
	mi := &file_library_v1_library_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestDirectoryResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestDirectoryResponse) ProtoMessage() {}

func (x *IngestDirectoryResponse) ProtoReflect() protoreflect.Message {
	mi := &file_library_v1_library_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestDirectoryResponse.ProtoReflect.Descriptor instead.
func (*IngestDirectoryResponse) Descriptor() ([]byte, []int) {
	return file_library_v1_library_proto_rawDescGZIP(), []int{5}
}

func (x *IngestDirectoryResponse) GetScanned() uint32 {
	if x != nil {
		return x.Scanned
	}
	return 0
}

func (x *IngestDirectoryResponse) GetMatched() uint32 {
	if x != nil {
		return x.Matched
	}
	return 0
}

func (x *IngestDirectoryResponse) GetSucceeded() uint32 {
	if x != nil {
		return x.Succeeded
	}
	return 0
}

func (x *IngestDirectoryResponse) GetDeduplicated() uint32 {
	if x != nil {
		return x.Deduplicated
	}
	return 0
}

func (x *IngestDirectoryResponse) GetFailed() uint32 {
	if x != nil {
		return x.Failed
	}
	return 0
}

func (x *IngestDirectoryResponse) GetResults() []*FileResult {
	if x != nil {
		return x.Results
	}
	return nil
}

type ListDocumentsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Full          bool                   `protobuf:"varint,1,opt,name=full,proto3" json:"full,omitempty"`
	Fields        []string               `protobuf:"bytes,2,rep,name=fields,proto3" json:"fields,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListDocumentsRequest) Reset() {
	*x = ListDocumentsRequest{}
	mi := &file_library_v1_library_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListDocumentsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListDocumentsRequest) ProtoMessage() {}

func (x *ListDocumentsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_library_v1_library_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListDocumentsRequest.ProtoReflect.Descriptor instead.
func (*ListDocumentsRequest) Descriptor() ([]byte, []int) {
	return file_library_v1_library_proto_rawDescGZIP(), []int{6}
}

func (x *ListDocumentsRequest) GetFull() bool {
	if x != nil {
		return x.Full
	}
	return false
}

func (x *ListDocumentsRequest) GetFields() []string {
	if x != nil {
		return x.Fields
	}
	return nil
}

type ListDocumentsResponse struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// Structured plain-text rendering of the catalog.
	Rendered      string      `protobuf:"bytes,1,opt,name=rendered,proto3" json:"rendered,omitempty"`
	Documents     []*Document `protobuf:"bytes,2,rep,name=documents,proto3" json:"documents,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListDocumentsResponse) Reset() {
	*x = ListDocumentsResponse{}
	mi := &file_library_v1_library_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListDocumentsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListDocumentsResponse) ProtoMessage() {}

func (x *ListDocumentsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_library_v1_library_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListDocumentsResponse.ProtoReflect.Descriptor instead.
func (*ListDocumentsResponse) Descriptor() ([]byte, []int) {
	return file_library_v1_library_proto_rawDescGZIP(), []int{7}
}

func (x *ListDocumentsResponse) GetRendered() string {
	if x != nil {
		return x.Rendered
	}
	return ""
}

func (x *ListDocumentsResponse) GetDocuments() []*Document {
	if x != nil {
		return x.Documents
	}
	return nil
}

type GetTableOfContentsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    int64                  `protobuf:"varint,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetTableOfContentsRequest) Reset() {
	*x = GetTableOfContentsRequest{}
	mi := &file_library_v1_library_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetTableOfContentsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetTableOfContentsRequest) ProtoMessage() {}

func (x *GetTableOfContentsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_library_v1_library_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetTableOfContentsRequest.ProtoReflect.Descriptor instead.
func (*GetTableOfContentsRequest) Descriptor() ([]byte, []int) {
	return file_library_v1_library_proto_rawDescGZIP(), []int{8}
}

func (x *GetTableOfContentsRequest) GetDocumentId() int64 {
	if x != nil {
		return x.DocumentId
	}
	return 0
}

type GetTableOfContentsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Rendered      string                 `protobuf:"bytes,1,opt,name=rendered,proto3" json:"rendered,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetTableOfContentsResponse) Reset() {
	*x = GetTableOfContentsResponse{}
	mi := &file_library_v1_library_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetTableOfContentsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetTableOfContentsResponse) ProtoMessage() {}

func (x *GetTableOfContentsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_library_v1_library_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetTableOfContentsResponse.ProtoReflect.Descriptor instead.
func (*GetTableOfContentsResponse) Descriptor() ([]byte, []int) {
	return file_library_v1_library_proto_rawDescGZIP(), []int{9}
}

func (x *GetTableOfContentsResponse) GetRendered() string {
	if x != nil {
		return x.Rendered
	}
	return ""
}

type GetPagesRequest struct {
	state      protoimpl.MessageState `protogen:"open.v1"`
	DocumentId int64                  `protobuf:"varint,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	// Page range selector, e.g. "1,2,3" or "1-5,10-15". Numbers are
	// resolved printed-to-canonical when the document has printed-page
	// evidence from its images.
	Pages         string `protobuf:"bytes,2,opt,name=pages,proto3" json:"pages,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetPagesRequest) Reset() {
	*x = GetPagesRequest{}
	mi := &file_library_v1_library_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetPagesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetPagesRequest) ProtoMessage() {}

func (x *GetPagesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_library_v1_library_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetPagesRequest.ProtoReflect.Descriptor instead.
func (*GetPagesRequest) Descriptor() ([]byte, []int) {
	return file_library_v1_library_proto_rawDescGZIP(), []int{10}
}

func (x *GetPagesRequest) GetDocumentId() int64 {
	if x != nil {
		return x.DocumentId
	}
	return 0
}

func (x *GetPagesRequest) GetPages() string {
	if x != nil {
		return x.Pages
	}
	return ""
}

type GetPagesResponse struct {
	state   protoimpl.MessageState `protogen:"open.v1"`
	Content string                 `protobuf:"bytes,1,opt,name=content,proto3" json:"content,omitempty"`
	// False when none of the requested pages had content.
	Found         bool `protobuf:"varint,2,opt,name=found,proto3" json:"found,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetPagesResponse) Reset() {
	*x = GetPagesResponse{}
	mi := &file_library_v1_library_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetPagesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetPagesResponse) ProtoMessage() {}

func (x *GetPagesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_library_v1_library_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetPagesResponse.ProtoReflect.Descriptor instead.
func (*GetPagesResponse) Descriptor() ([]byte, []int) {
	return file_library_v1_library_proto_rawDescGZIP(), []int{11}
}

func (x *GetPagesResponse) GetContent() string {
	if x != nil {
		return x.Content
	}
	return ""
}

func (x *GetPagesResponse) GetFound() bool {
	if x != nil {
		return x.Found
	}
	return false
}

type ExportCatalogRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportCatalogRequest) Reset() {
	*x = ExportCatalogRequest{}
	mi := &file_library_v1_library_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportCatalogRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportCatalogRequest) ProtoMessage() {}

func (x *ExportCatalogRequest) ProtoReflect() protoreflect.Message {
	mi := &file_library_v1_library_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportCatalogRequest.ProtoReflect.Descriptor instead.
func (*ExportCatalogRequest) Descriptor() ([]byte, []int) {
	return file_library_v1_library_proto_rawDescGZIP(), []int{12}
}

type ExportCatalogResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportCatalogResponse) Reset() {
	*x = ExportCatalogResponse{}
	mi := &file_library_v1_library_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportCatalogResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportCatalogResponse) ProtoMessage() {}

func (x *ExportCatalogResponse) ProtoReflect() protoreflect.Message {
	mi := &file_library_v1_library_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportCatalogResponse.ProtoReflect.Descriptor instead.
func (*ExportCatalogResponse) Descriptor() ([]byte, []int) {
	return file_library_v1_library_proto_rawDescGZIP(), []int{13}
}

func (x *ExportCatalogResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

var File_library_v1_library_proto protoreflect.FileDescriptor

const file_library_v1_library_proto_rawDesc = "" +
	"\n" +
	"\x18library/v1/library.proto\x12\n" +
	"library.v1\"\xaa\x01\n" +
	"\x11IngestFileRequest\x12\x12\n" +
	"\x04path\x18\x01 \x01(\tR\x04path\x12\x14\n" +
	"\x05title\x18\x02 \x01(\tR\x05title\x12\x16\n" +
	"\x06author\x18\x03 \x01(\tR\x06author\x12\x1a\n" +
	"\bcategory\x18\x04 \x01(\tR\bcategory\x12\x12\n" +
	"\x04tags\x18\x05 \x03(\tR\x04tags\x12#\n" +
	"\rkeep_original\x18\x06 \x01(\bR\fkeepOriginal\"\xc4\x03\n" +
	"\bDocument\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\x03R\x02id\x12\x14\n" +
	"\x05title\x18\x02 \x01(\tR\x05title\x12\x16\n" +
	"\x06author\x18\x03 \x01(\tR\x06author\x12\x1f\n" +
	"\vsource_type\x18\x04 \x01(\tR\n" +
	"sourceType\x12!\n" +
	"\fcontent_hash\x18\x05 \x01(\tR\vcontentHash\x12#\n" +
	"\rmarkdown_path\x18\x06 \x01(\tR\fmarkdownPath\x12#\n" +
	"\roriginal_path\x18\a \x01(\tR\foriginalPath\x12\x1d\n" +
	"\n" +
	"page_count\x18\b \x01(\x05R\tpageCount\x12\x1d\n" +
	"\n" +
	"word_count\x18\t \x01(\x05R\twordCount\x12#\n" +
	"\rchapter_count\x18\n" +
	" \x01(\x05R\fchapterCount\x12\x1a\n" +
	"\bcategory\x18\v \x01(\tR\bcategory\x12\x12\n" +
	"\x04tags\x18\f \x03(\tR\x04tags\x12\x1f\n" +
	"\vimage_count\x18\r \x01(\x05R\n" +
	"imageCount\x12\x1d\n" +
	"\n" +
	"has_images\x18\x0e \x01(\bR\thasImages\x12\x19\n" +
	"\badded_at\x18\x0f \x01(\tR\aaddedAt\"\x86\x01\n" +
	"\x12IngestFileResponse\x120\n" +
	"\bdocument\x18\x01 \x01(\v2\x14.library.v1.DocumentR\bdocument\x12\"\n" +
	"\fdeduplicated\x18\x02 \x01(\bR\fdeduplicated\x12\x1a\n" +
	"\bwarnings\x18\x03 \x03(\tR\bwarnings\"\xab\x01\n" +
	"\x16IngestDirectoryRequest\x12\x1b\n" +
	"\troot_path\x18\x01 \x01(\tR\brootPath\x12\x1f\n" +
	"\vskip_hidden\x18\x02 \x01(\bR\n" +
	"skipHidden\x12#\n" +
	"\rkeep_original\x18\x03 \x01(\bR\fkeepOriginal\x12\x1a\n" +
	"\bcategory\x18\x04 \x01(\tR\bcategory\x12\x12\n" +
	"\x04tags\x18\x05 \x03(\tR\x04tags\"\x97\x01\n" +
	"\n" +
	"FileResult\x12\x12\n" +
	"\x04path\x18\x01 \x01(\tR\x04path\x12\x1f\n" +
	"\vdocument_id\x18\x02 \x01(\x03R\n" +
	"documentId\x12\"\n" +
	"\fdeduplicated\x18\x03 \x01(\bR\fdeduplicated\x12\x1a\n" +
	"\bwarnings\x18\x04 \x03(\tR\bwarnings\x12\x14\n" +
	"\x05error\x18\x05 \x01(\tR\x05error\"\xd9\x01\n" +
	"\x17IngestDirectoryResponse\x12\x18\n" +
	"\ascanned\x18\x01 \x01(\rR\ascanned\x12\x18\n" +
	"\amatched\x18\x02 \x01(\rR\amatched\x12\x1c\n" +
	"\tsucceeded\x18\x03 \x01(\rR\tsucceeded\x12\"\n" +
	"\fdeduplicated\x18\x04 \x01(\rR\fdeduplicated\x12\x16\n" +
	"\x06failed\x18\x05 \x01(\rR\x06failed\x120\n" +
	"\aresults\x18\x06 \x03(\v2\x16.library.v1.FileResultR\aresults\"B\n" +
	"\x14ListDocumentsRequest\x12\x12\n" +
	"\x04full\x18\x01 \x01(\bR\x04full\x12\x16\n" +
	"\x06fields\x18\x02 \x03(\tR\x06fields\"g\n" +
	"\x15ListDocumentsResponse\x12\x1a\n" +
	"\brendered\x18\x01 \x01(\tR\brendered\x122\n" +
	"\tdocuments\x18\x02 \x03(\v2\x14.library.v1.DocumentR\tdocuments\"<\n" +
	"\x19GetTableOfContentsRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\x03R\n" +
	"documentId\"8\n" +
	"\x1aGetTableOfContentsResponse\x12\x1a\n" +
	"\brendered\x18\x01 \x01(\tR\brendered\"H\n" +
	"\x0fGetPagesRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\x03R\n" +
	"documentId\x12\x14\n" +
	"\x05pages\x18\x02 \x01(\tR\x05pages\"B\n" +
	"\x10GetPagesResponse\x12\x18\n" +
	"\acontent\x18\x01 \x01(\tR\acontent\x12\x14\n" +
	"\x05found\x18\x02 \x01(\bR\x05found\"\x16\n" +
	"\x14ExportCatalogRequest\"+\n" +
	"\x15ExportCatalogResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx2\xbb\x03\n" +
	"\x0eLibraryService\x12K\n" +
	"\n" +
	"IngestFile\x12\x1d.library.v1.IngestFileRequest\x1a\x1e.library.v1.IngestFileResponse\x12Z\n" +
	"\x0fIngestDirectory\x12\".library.v1.IngestDirectoryRequest\x1a#.library.v1.IngestDirectoryResponse\x12T\n" +
	"\rListDocuments\x12 .library.v1.ListDocumentsRequest\x1a!.library.v1.ListDocumentsResponse\x12c\n" +
	"\x12GetTableOfContents\x12%.library.v1.GetTableOfContentsRequest\x1a&.library.v1.GetTableOfContentsResponse\x12E\n" +
	"\bGetPages\x12\x1b.library.v1.GetPagesRequest\x1a\x1c.library.v1.GetPagesResponse2e\n" +
	"\rExportService\x12T\n" +
	"\rExportCatalog\x12 .library.v1.ExportCatalogRequest\x1a!.library.v1.ExportCatalogResponseBAZ?github.com/candlekeep/candlekeep/gen/proto/library/v1;libraryv1b\x06proto3"

var (
	file_library_v1_library_proto_rawDescOnce sync.Once
	file_library_v1_library_proto_rawDescData []byte
)

func file_library_v1_library_proto_rawDescGZIP() []byte {
	file_library_v1_library_proto_rawDescOnce.Do(func() {
		file_library_v1_library_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_library_v1_library_proto_rawDesc), len(file_library_v1_library_proto_rawDesc)))
	})
	return file_library_v1_library_proto_rawDescData
}

var file_library_v1_library_proto_msgTypes = make([]protoimpl.MessageInfo, 14)
var file_library_v1_library_proto_goTypes = []any{
	(*IngestFileRequest)(nil),          // 0: library.v1.IngestFileRequest
	(*Document)(nil),                   // 1: library.v1.Document
	(*IngestFileResponse)(nil),         // 2: library.v1.IngestFileResponse
	(*IngestDirectoryRequest)(nil),     // 3: library.v1.IngestDirectoryRequest
	(*FileResult)(nil),                 // 4: library.v1.FileResult
	(*IngestDirectoryResponse)(nil),    // 5: library.v1.IngestDirectoryResponse
	(*ListDocumentsRequest)(nil),       // 6: library.v1.ListDocumentsRequest
	(*ListDocumentsResponse)(nil),      // 7: library.v1.ListDocumentsResponse
	(*GetTableOfContentsRequest)(nil),  // 8: library.v1.GetTableOfContentsRequest
	(*GetTableOfContentsResponse)(nil), // 9: library.v1.GetTableOfContentsResponse
	(*GetPagesRequest)(nil),            // 10: library.v1.GetPagesRequest
	(*GetPagesResponse)(nil),           // 11: library.v1.GetPagesResponse
	(*ExportCatalogRequest)(nil),       // 12: library.v1.ExportCatalogRequest
	(*ExportCatalogResponse)(nil),      // 13: library.v1.ExportCatalogResponse
}
var file_library_v1_library_proto_depIdxs = []int32{
	1,  // 0: library.v1.IngestFileResponse.document:type_name -> library.v1.Document
	4,  // 1: library.v1.IngestDirectoryResponse.results:type_name -> library.v1.FileResult
	1,  // 2: library.v1.ListDocumentsResponse.documents:type_name -> library.v1.Document
	0,  // 3: library.v1.LibraryService.IngestFile:input_type -> library.v1.IngestFileRequest
	3,  // 4: library.v1.LibraryService.IngestDirectory:input_type -> library.v1.IngestDirectoryRequest
	6,  // 5: library.v1.LibraryService.ListDocuments:input_type -> library.v1.ListDocumentsRequest
	8,  // 6: library.v1.LibraryService.GetTableOfContents:input_type -> library.v1.GetTableOfContentsRequest
	10, // 7: library.v1.LibraryService.GetPages:input_type -> library.v1.GetPagesRequest
	12, // 8: library.v1.ExportService.ExportCatalog:input_type -> library.v1.ExportCatalogRequest
	2,  // 9: library.v1.LibraryService.IngestFile:output_type -> library.v1.IngestFileResponse
	5,  // 10: library.v1.LibraryService.IngestDirectory:output_type -> library.v1.IngestDirectoryResponse
	7,  // 11: library.v1.LibraryService.ListDocuments:output_type -> library.v1.ListDocumentsResponse
	9,  // 12: library.v1.LibraryService.GetTableOfContents:output_type -> library.v1.GetTableOfContentsResponse
	11, // 13: library.v1.LibraryService.GetPages:output_type -> library.v1.GetPagesResponse
	13, // 14: library.v1.ExportService.ExportCatalog:output_type -> library.v1.ExportCatalogResponse
	9,  // [9:15] is the sub-list for method output_type
	3,  // [3:9] is the sub-list for method input_type
	3,  // [3:3] is the sub-list for extension type_name
	3,  // [3:3] is the sub-list for extension extendee
	0,  // [0:3] is the sub-list for field type_name
}

func init() { file_library_v1_library_proto_init() }
func file_library_v1_library_proto_init() {
	if File_library_v1_library_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_library_v1_library_proto_rawDesc), len(file_library_v1_library_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   14,
			NumExtensions: 0,
			NumServices:   2,
		},
		GoTypes:           file_library_v1_library_proto_goTypes,
		DependencyIndexes: file_library_v1_library_proto_depIdxs,
		MessageInfos:      file_library_v1_library_proto_msgTypes,
	}.Build()
	File_library_v1_library_proto = out.File
	file_library_v1_library_proto_goTypes = nil
	file_library_v1_library_proto_depIdxs = nil
}
