package client

import "slices"

// Descriptor is the static metadata of one Joplin item type. Descriptors are
// shared, read-only values; callers must not modify the slices they hold.
type Descriptor struct {
	Name string
	// Route is the path segment below the base URL, e.g. "notes".
	Route string
	// Fields lists the fields the item type may have, in documentation order.
	Fields []string
	// RequiredForCreate lists the keys a structured create payload must carry.
	RequiredForCreate []string
}

// HasField reports whether field is one of d.Fields.
func (d Descriptor) HasField(field string) bool {
	return slices.Contains(d.Fields, field)
}

// Item types of the Joplin Data API.
// See https://joplinapp.org/help/api/references/rest_api/
var (
	Notes = Descriptor{
		Name:              "note",
		Route:             "notes",
		RequiredForCreate: []string{"title", "body", "parent_id"},
		Fields: []string{
			"id",
			"parent_id",
			"title",
			"body",
			"created_time",
			"updated_time",
			"is_conflict",
			"latitude",
			"longitude",
			"altitude",
			"author",
			"source_url",
			"is_todo",
			"todo_due",
			"todo_completed",
			"source",
			"source_application",
			"application_data",
			"order",
			"user_created_time",
			"user_updated_time",
			"encryption_cipher_text",
			"encryption_applied",
			"markup_language",
			"is_shared",
			"share_id",
			"conflict_original_id",
			"master_key_id",
			"user_data",
			"deleted_time",
			"body_html",
			"base_url",
			"image_data_url",
			"crop_rect",
		},
	}

	Tags = Descriptor{
		Name:              "tag",
		Route:             "tags",
		RequiredForCreate: []string{"title"},
		Fields: []string{
			"id",
			"title",
			"created_time",
			"updated_time",
			"user_created_time",
			"user_updated_time",
			"encryption_cipher_text",
			"encryption_applied",
			"is_shared",
			"parent_id",
			"user_data",
		},
	}

	Folders = Descriptor{
		Name:              "folder",
		Route:             "folders",
		RequiredForCreate: []string{"title", "parent_id"},
		Fields: []string{
			"id",
			"title",
			"created_time",
			"updated_time",
			"user_created_time",
			"user_updated_time",
			"encryption_cipher_text",
			"encryption_applied",
			"parent_id",
			"is_shared",
			"share_id",
			"master_key_id",
			"icon",
			"user_data",
			"deleted_time",
		},
	}

	Resources = Descriptor{
		Name:              "resource",
		Route:             "resources",
		RequiredForCreate: []string{"title", "parent_id"},
		Fields: []string{
			"id",
			"title",
			"mime",
			"filename",
			"created_time",
			"updated_time",
			"user_created_time",
			"user_updated_time",
			"file_extension",
			"encryption_cipher_text",
			"encryption_applied",
			"encryption_blob_encrypted",
			"size",
			"is_shared",
			"share_id",
			"master_key_id",
			"user_data",
			"blob_updated_time",
			"ocr_text",
			"ocr_details",
			"ocr_status",
			"ocr_error",
		},
	}

	Revisions = Descriptor{
		Name:              "revision",
		Route:             "revisions",
		RequiredForCreate: []string{"parent_id"},
		Fields: []string{
			"id",
			"parent_id",
			"item_type",
			"item_id",
			"item_updated_time",
			"title_diff",
			"body_diff",
			"metadata_diff",
			"encryption_cipher_text",
			"encryption_applied",
			"updated_time",
			"created_time",
		},
	}

	Events = Descriptor{
		Name:  "event",
		Route: "events",
		Fields: []string{
			"id",
			"item_type",
			"item_id",
			"type",
			"created_time",
			"source",
			"before_change_item",
		},
	}
)

// Descriptors returns every known item type.
func Descriptors() []Descriptor {
	return []Descriptor{Notes, Tags, Folders, Resources, Revisions, Events}
}

// DescriptorByName looks up an item type by its singular name ("note") or its
// route ("notes").
func DescriptorByName(name string) (Descriptor, bool) {
	for _, d := range Descriptors() {
		if d.Name == name || d.Route == name {
			return d, true
		}
	}

	return Descriptor{}, false
}
