package catalog

import (
	"regexp"
	"strings"

	apiSheet "agrimap/pkg/api/sheet"
)

var (
	driveFilePath = regexp.MustCompile(`/file/d/([a-zA-Z0-9_-]+)`)
	driveIDParam  = regexp.MustCompile(`[?&]id=([a-zA-Z0-9_-]+)`)
)

// DriveThumbnail converts a Google Drive sharing link into a thumbnail link.
// Other http(s) links are returned unchanged; anything else is absent.
func DriveThumbnail(url string) string {
	url = strings.TrimSpace(url)
	if apiSheet.IsAbsent(url) {
		return apiSheet.Absent
	}
	m := driveFilePath.FindStringSubmatch(url)
	if m == nil {
		m = driveIDParam.FindStringSubmatch(url)
	}
	if m == nil {
		if strings.HasPrefix(url, "http") {
			return url
		}
		return apiSheet.Absent
	}
	return "https://drive.google.com/thumbnail?id=" + m[1] + "&sz=w400"
}
