package client

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// Typed views of the records returned by the API. Only fields requested from
// the server are populated; timestamps are milliseconds since the epoch.

type Note struct {
	ID             string  `json:"id"`
	ParentID       string  `json:"parent_id"`
	Title          string  `json:"title"`
	Body           string  `json:"body"`
	CreatedTime    int64   `json:"created_time"`
	UpdatedTime    int64   `json:"updated_time"`
	IsConflict     bool    `json:"is_conflict"`
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	Altitude       float64 `json:"altitude"`
	Author         string  `json:"author"`
	SourceURL      string  `json:"source_url"`
	IsTodo         bool    `json:"is_todo"`
	TodoDue        int64   `json:"todo_due"`
	TodoCompleted  int64   `json:"todo_completed"`
	Source         string  `json:"source"`
	MarkupLanguage int     `json:"markup_language"`
	IsShared       bool    `json:"is_shared"`
	DeletedTime    int64   `json:"deleted_time"`
}

type Tag struct {
	ID          string `json:"id"`
	ParentID    string `json:"parent_id"`
	Title       string `json:"title"`
	CreatedTime int64  `json:"created_time"`
	UpdatedTime int64  `json:"updated_time"`
}

type Folder struct {
	ID          string `json:"id"`
	ParentID    string `json:"parent_id"`
	Title       string `json:"title"`
	Icon        string `json:"icon"`
	CreatedTime int64  `json:"created_time"`
	UpdatedTime int64  `json:"updated_time"`
	DeletedTime int64  `json:"deleted_time"`
}

type Resource struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Mime          string `json:"mime"`
	Filename      string `json:"filename"`
	FileExtension string `json:"file_extension"`
	Size          int64  `json:"size"`
	CreatedTime   int64  `json:"created_time"`
	UpdatedTime   int64  `json:"updated_time"`
	OCRText       string `json:"ocr_text"`
}

type Revision struct {
	ID              string `json:"id"`
	ParentID        string `json:"parent_id"`
	ItemType        int    `json:"item_type"`
	ItemID          string `json:"item_id"`
	ItemUpdatedTime int64  `json:"item_updated_time"`
	TitleDiff       string `json:"title_diff"`
	BodyDiff        string `json:"body_diff"`
	MetadataDiff    string `json:"metadata_diff"`
	CreatedTime     int64  `json:"created_time"`
	UpdatedTime     int64  `json:"updated_time"`
}

type Event struct {
	ID               int64  `json:"id"`
	ItemType         int    `json:"item_type"`
	ItemID           string `json:"item_id"`
	Type             int    `json:"type"`
	CreatedTime      int64  `json:"created_time"`
	Source           int    `json:"source"`
	BeforeChangeItem string `json:"before_change_item"`
}

// DecodeRecords decodes records into out, which must be a pointer to a slice,
// e.g. *[]Note. Numbers, booleans and strings are converted as needed since
// the API reports flags such as is_todo as 0 or 1.
func DecodeRecords(records []Record, out any) error {
	return decode(records, out)
}

// DecodeRecord decodes a single record into out, e.g. *Note.
func DecodeRecord(record Record, out any) error {
	return decode(record, out)
}

func decode(in, out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return fmt.Errorf("failed to create record decoder: %w", err)
	}

	if err := decoder.Decode(in); err != nil {
		return fmt.Errorf("failed to decode records: %w", err)
	}

	return nil
}
