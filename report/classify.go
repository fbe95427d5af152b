package report

import (
	"bytes"
	"strings"

	"github.com/buger/jsonparser"
)

// BlockKind classifies a display block
type BlockKind int

const (
	BlockText  BlockKind = iota // paragraph of text
	BlockImage                  // image URL
	BlockFile                   // downloadable file URL
)

func (k BlockKind) String() string {
	switch k {
	case BlockText:
		return "text"
	case BlockImage:
		return "image"
	case BlockFile:
		return "file"
	}
	return "unknown"
}

// Block is one renderable unit extracted from an API payload
type Block struct {
	Kind  BlockKind
	Label string // originating field name
	Value string
}

// Classify walks a raw JSON payload depth-first, pre-order, and
// extracts display blocks. String fields whose key starts with "text",
// "image" or "file" (case-insensitive) become blocks and are not
// recursed into; other objects and arrays are recursed into in
// document order; everything else is dropped. Output order is the
// insertion order of the traversal.
func Classify(raw []byte) []Block {
	var blocks []Block
	walkPayload(raw, &blocks)
	return blocks
}

func walkPayload(raw []byte, blocks *[]Block) {
	data := bytes.TrimSpace(raw)
	if len(data) == 0 {
		return
	}

	switch data[0] {
	case '[':
		jsonparser.ArrayEach(data, func(value []byte, dataType jsonparser.ValueType, offset int, err error) {
			if dataType == jsonparser.Object || dataType == jsonparser.Array {
				walkPayload(value, blocks)
			}
		})

	case '{':
		jsonparser.ObjectEach(data, func(key, value []byte, dataType jsonparser.ValueType, offset int) error {
			if dataType == jsonparser.String {
				if kind, ok := kindForKey(string(key)); ok {
					s, err := jsonparser.ParseString(value)
					if err != nil {
						s = string(value)
					}
					*blocks = append(*blocks, Block{Kind: kind, Label: string(key), Value: s})
				}
				return nil
			}
			if dataType == jsonparser.Object || dataType == jsonparser.Array {
				walkPayload(value, blocks)
			}
			return nil
		})
	}
}

// kindForKey maps a field-name prefix to a block kind
func kindForKey(key string) (BlockKind, bool) {
	lower := strings.ToLower(key)
	switch {
	case strings.HasPrefix(lower, "text"):
		return BlockText, true
	case strings.HasPrefix(lower, "image"):
		return BlockImage, true
	case strings.HasPrefix(lower, "file"):
		return BlockFile, true
	}
	return 0, false
}
