// Package metadatajson owns the metadata JSON pipeline: input validation,
// persistence shape, and the durable upload job runner.
package metadatajson

import (
	"net/url"

	"github.com/google/uuid"

	"github.com/dropforge/nft-hub/internal/domain"
	"github.com/dropforge/nft-hub/internal/store/schema"
)

// Solana's token metadata program caps these on chain.
const (
	solanaMaxNameLength   = 32
	solanaMaxSymbolLength = 10
)

// Attribute is one trait of a metadata document.
type Attribute struct {
	TraitType string `json:"trait_type"`
	Value     string `json:"value"`
}

// File is an auxiliary file reference of a metadata document.
type File struct {
	URI      string  `json:"uri"`
	FileType *string `json:"type,omitempty"`
}

// Document is the metadata JSON input supplied on mutations, conforming to
// the Metaplex v1.1.0 standard.
type Document struct {
	Name         string      `json:"name"`
	Symbol       string      `json:"symbol"`
	Description  string      `json:"description"`
	Image        string      `json:"image"`
	AnimationURL *string     `json:"animation_url,omitempty"`
	ExternalURL  *string     `json:"external_url,omitempty"`
	Attributes   []Attribute `json:"attributes"`
	Files        []File      `json:"-"`
}

// uploadPayload is the document shape shipped to the upload service.
type uploadPayload struct {
	Name         string      `json:"name"`
	Symbol       string      `json:"symbol"`
	Description  string      `json:"description"`
	Image        string      `json:"image"`
	AnimationURL *string     `json:"animation_url,omitempty"`
	ExternalURL  *string     `json:"external_url,omitempty"`
	Attributes   []Attribute `json:"attributes"`
	Properties   struct {
		Files []File `json:"files,omitempty"`
	} `json:"properties"`
}

func validURL(raw string) bool {
	u, err := url.Parse(raw)
	return err == nil && u.Scheme != "" && u.Host != ""
}

// Validate applies the per-chain metadata constraints.
func Validate(blockchain domain.Blockchain, doc Document) error {
	if !validURL(doc.Image) {
		return domain.ErrInvalidURL
	}
	if doc.AnimationURL != nil && !validURL(*doc.AnimationURL) {
		return domain.ErrInvalidURL
	}
	if doc.ExternalURL != nil && !validURL(*doc.ExternalURL) {
		return domain.ErrInvalidURL
	}
	for _, f := range doc.Files {
		if !validURL(f.URI) {
			return domain.ErrInvalidURL
		}
	}

	if blockchain == domain.BlockchainSolana {
		if len(doc.Name) > solanaMaxNameLength {
			return domain.ErrNameTooLong
		}
		if len(doc.Symbol) > solanaMaxSymbolLength {
			return domain.ErrSymbolTooLong
		}
	}

	return nil
}

// Rows builds the persistence shape for a document owned by id (the
// collection id or mint id).
func Rows(id uuid.UUID, doc Document) *schema.MetadataJson {
	row := &schema.MetadataJson{
		ID:           id,
		Name:         doc.Name,
		Symbol:       doc.Symbol,
		Description:  doc.Description,
		Image:        doc.Image,
		AnimationURL: doc.AnimationURL,
		ExternalURL:  doc.ExternalURL,
	}
	for _, a := range doc.Attributes {
		row.Attributes = append(row.Attributes, schema.MetadataJsonAttribute{
			ID:             uuid.New(),
			MetadataJsonID: id,
			TraitType:      a.TraitType,
			Value:          a.Value,
		})
	}
	for _, f := range doc.Files {
		row.Files = append(row.Files, schema.MetadataJsonFile{
			ID:             uuid.New(),
			MetadataJsonID: id,
			URI:            f.URI,
			FileType:       f.FileType,
		})
	}
	return row
}

// UploadPayload reshapes a persisted document into the uploadable form.
func UploadPayload(row *schema.MetadataJson) any {
	payload := uploadPayload{
		Name:         row.Name,
		Symbol:       row.Symbol,
		Description:  row.Description,
		Image:        row.Image,
		AnimationURL: row.AnimationURL,
		ExternalURL:  row.ExternalURL,
		Attributes:   []Attribute{},
	}
	for _, a := range row.Attributes {
		payload.Attributes = append(payload.Attributes, Attribute{TraitType: a.TraitType, Value: a.Value})
	}
	for _, f := range row.Files {
		payload.Properties.Files = append(payload.Properties.Files, File{URI: f.URI, FileType: f.FileType})
	}
	return payload
}
