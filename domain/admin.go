package domain

// AdminUser is returned by the document console login and cached beside the token.
type AdminUser struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	Name  string `json:"name,omitempty"`
}

// Document is one PDF ingested into the vector index.
// Timestamps are kept as the backend sends them (naive ISO-8601, no zone).
type Document struct {
	DocumentID        string `json:"document_id"`
	Filename          string `json:"filename"`
	DocumentType      string `json:"document_type"`
	UploadedBy        string `json:"uploaded_by"`
	UploadedAt        string `json:"uploaded_at"`
	VectorCount       int    `json:"vector_count"`
	FileSize          int64  `json:"file_size"`
	ChunkCount        int    `json:"chunk_count"`
	ExtractedProducts int    `json:"extracted_products"`
	AddedToCatalog    int    `json:"added_to_catalog"`
	CatalogUpdated    bool   `json:"catalog_updated"`
}

type DocumentStats struct {
	TotalVectors           int     `json:"total_vectors"`
	TotalDocuments         int     `json:"total_documents"`
	TotalProductsExtracted int     `json:"total_products_extracted,omitempty"`
	TotalStorageBytes      int64   `json:"total_storage_bytes,omitempty"`
	TotalStorageMB         float64 `json:"total_storage_mb,omitempty"`
	IndexFullness          float64 `json:"index_fullness,omitempty"`
	Dimensions             int     `json:"dimensions,omitempty"`
	EmbeddingModel         string  `json:"embedding_model,omitempty"`
}

// Merge overlays the non-zero counters of other, the way the documents listing
// refreshes the totals shown next to it.
func (s DocumentStats) Merge(other DocumentStats) DocumentStats {
	if other.TotalVectors != 0 {
		s.TotalVectors = other.TotalVectors
	}
	if other.TotalDocuments != 0 {
		s.TotalDocuments = other.TotalDocuments
	}
	if other.TotalProductsExtracted != 0 {
		s.TotalProductsExtracted = other.TotalProductsExtracted
	}
	if other.TotalStorageBytes != 0 {
		s.TotalStorageBytes = other.TotalStorageBytes
		s.TotalStorageMB = other.TotalStorageMB
	}
	if other.IndexFullness != 0 {
		s.IndexFullness = other.IndexFullness
	}
	if other.Dimensions != 0 {
		s.Dimensions = other.Dimensions
	}
	if other.EmbeddingModel != "" {
		s.EmbeddingModel = other.EmbeddingModel
	}
	return s
}

// UploadedDocument summarises a successful PDF ingestion.
type UploadedDocument struct {
	DocumentID        string   `json:"document_id"`
	Filename          string   `json:"filename"`
	Chunks            int      `json:"chunks"`
	VectorsUploaded   int      `json:"vectors_uploaded"`
	FileSize          int64    `json:"file_size"`
	EmbeddingModel    string   `json:"embedding_model"`
	ExtractedProducts int      `json:"extracted_products"`
	AddedToCatalog    int      `json:"added_to_catalog"`
	CatalogUpdated    bool     `json:"catalog_updated"`
	Products          []string `json:"products"`
}

// SearchHit is one match of a test query against the vector index.
type SearchHit struct {
	Score       float64 `json:"score"`
	Text        string  `json:"text"`
	DocumentID  string  `json:"document_id"`
	Filename    string  `json:"filename"`
	ChunkIndex  int     `json:"chunk_index"`
	Type        string  `json:"type"`
	ProductName *string `json:"product_name"`
	ImageURL    *string `json:"image_url"`
}
