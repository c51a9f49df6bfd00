package feeds

// Document is a parsed feed: channel metadata plus its entries in feed order
type Document struct {
	Title   string
	Author  string
	Summary string
	// Image is nil when the channel declares no cover image
	Image   *string
	Entries []Entry
}

// ImageURL returns the channel cover image or an empty string
func (d *Document) ImageURL() string {
	if d.Image == nil {
		return ""
	}
	return *d.Image
}

// Entry is a single feed item
type Entry struct {
	Title   string
	Summary string
	// Image is nil when the item declares no image
	Image *string
	// Links holds the item links followed by its enclosure URLs
	Links []string
}

// ImageURL returns the entry image or an empty string
func (e Entry) ImageURL() string {
	if e.Image == nil {
		return ""
	}
	return *e.Image
}

// AudioURL returns the second link of the entry, which for podcast items is
// the media enclosure. Entries with fewer than two links have no audio.
func (e Entry) AudioURL() string {
	if len(e.Links) < 2 {
		return ""
	}
	return e.Links[1]
}
