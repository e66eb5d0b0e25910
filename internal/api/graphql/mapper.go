package graphql

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"time"

	"github.com/dropforge/nft-hub/internal/api/graphql/dataloaders"
	"github.com/dropforge/nft-hub/internal/domain"
	"github.com/dropforge/nft-hub/internal/metadatajson"
	"github.com/dropforge/nft-hub/internal/store/schema"
)

// DropStatus derives the presented status from the drop and its backing
// collection; it is computed at read time, never stored.
func DropStatus(drop *schema.Drop, now time.Time) domain.DropStatus {
	return domain.DeriveDropStatus(drop.State(), now)
}

// EncodeCursor renders a connection offset as an opaque cursor.
func EncodeCursor(offset int) string {
	return base64.StdEncoding.EncodeToString([]byte("offset:" + strconv.Itoa(offset)))
}

// DecodeCursor parses an opaque cursor back into an offset; a nil cursor
// means the start of the listing.
func DecodeCursor(cursor *string) (int, error) {
	if cursor == nil || *cursor == "" {
		return 0, nil
	}
	raw, err := base64.StdEncoding.DecodeString(*cursor)
	if err != nil {
		return 0, fmt.Errorf("malformed cursor: %w", err)
	}
	var offset int
	if _, err := fmt.Sscanf(string(raw), "offset:%d", &offset); err != nil || offset < 0 {
		return 0, fmt.Errorf("malformed cursor %q", *cursor)
	}
	return offset, nil
}

// pageBounds resolves connection arguments into query bounds. The caller
// requests limit+1 rows to detect whether a next page exists.
func pageBounds(first *int, after *string) (limit, offset int, err error) {
	offset, err = DecodeCursor(after)
	if err != nil {
		return 0, 0, err
	}
	return dataloaders.ClampFirst(first), offset, nil
}

func collectionConnection(rows []schema.Collection, limit, offset int) *CollectionConnection {
	hasNext := len(rows) > limit
	if hasNext {
		rows = rows[:limit]
	}
	edges := make([]*CollectionEdge, 0, len(rows))
	for i := range rows {
		edges = append(edges, &CollectionEdge{Cursor: EncodeCursor(offset + i + 1), Node: &rows[i]})
	}
	conn := &CollectionConnection{Edges: edges, PageInfo: &PageInfo{HasNextPage: hasNext}}
	if len(edges) > 0 {
		conn.PageInfo.EndCursor = &edges[len(edges)-1].Cursor
	}
	return conn
}

func dropConnection(rows []schema.Drop, limit, offset int) *DropConnection {
	hasNext := len(rows) > limit
	if hasNext {
		rows = rows[:limit]
	}
	edges := make([]*DropEdge, 0, len(rows))
	for i := range rows {
		edges = append(edges, &DropEdge{Cursor: EncodeCursor(offset + i + 1), Node: &rows[i]})
	}
	conn := &DropConnection{Edges: edges, PageInfo: &PageInfo{HasNextPage: hasNext}}
	if len(edges) > 0 {
		conn.PageInfo.EndCursor = &edges[len(edges)-1].Cursor
	}
	return conn
}

func mintConnection(rows []schema.CollectionMint, limit, offset int) *MintConnection {
	hasNext := len(rows) > limit
	if hasNext {
		rows = rows[:limit]
	}
	edges := make([]*MintEdge, 0, len(rows))
	for i := range rows {
		edges = append(edges, &MintEdge{Cursor: EncodeCursor(offset + i + 1), Node: &rows[i]})
	}
	conn := &MintConnection{Edges: edges, PageInfo: &PageInfo{HasNextPage: hasNext}}
	if len(edges) > 0 {
		conn.PageInfo.EndCursor = &edges[len(edges)-1].Cursor
	}
	return conn
}

// ptrSlice reshapes loader results into the pointer slices gqlgen expects.
func ptrSlice[T any](rows []T) []*T {
	out := make([]*T, len(rows))
	for i := range rows {
		out[i] = &rows[i]
	}
	return out
}

func toCreators(in []*CreatorInput) []domain.Creator {
	if in == nil {
		return nil
	}
	creators := make([]domain.Creator, 0, len(in))
	for _, c := range in {
		creators = append(creators, domain.Creator{
			Address:  c.Address,
			Verified: c.Verified,
			Share:    uint8(c.Share),
		})
	}
	return creators
}

func toDocument(in *MetadataJsonInput) metadatajson.Document {
	doc := metadatajson.Document{
		Name:         in.Name,
		Symbol:       in.Symbol,
		Description:  in.Description,
		Image:        in.Image,
		AnimationURL: in.AnimationURL,
		ExternalURL:  in.ExternalURL,
	}
	for _, a := range in.Attributes {
		doc.Attributes = append(doc.Attributes, metadatajson.Attribute{TraitType: a.TraitType, Value: a.Value})
	}
	for _, f := range in.Files {
		fileType := f.FileType
		doc.Files = append(doc.Files, metadatajson.File{URI: f.URI, FileType: &fileType})
	}
	return doc
}

func toDocumentPtr(in *MetadataJsonInput) *metadatajson.Document {
	if in == nil {
		return nil
	}
	doc := toDocument(in)
	return &doc
}

func toInt64Ptr(in *int) *int64 {
	if in == nil {
		return nil
	}
	v := int64(*in)
	return &v
}
