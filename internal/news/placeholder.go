package news

import "fmt"

// PlaceholderImage returns a deterministic seeded placeholder URI for items
// the source ships without an image.
func PlaceholderImage(seed string) string {
	return fmt.Sprintf("https://picsum.photos/seed/%s/800/600", seed)
}

// IndexPlaceholder seeds the placeholder by position in the mapped list.
func IndexPlaceholder(index int) string {
	return PlaceholderImage(fmt.Sprintf("news-%d", index))
}

// GeneratedPlaceholder seeds the placeholder for a synthetic article. The
// timestamp keeps repeated fallback runs from colliding on the same image.
func GeneratedPlaceholder(bucket, country string, index int, unixMillis int64) string {
	return PlaceholderImage(fmt.Sprintf("%s-%s-%d-%d", bucket, country, index, unixMillis))
}
