package formatter

import (
	"encoding/json"

	"github.com/theoremus-urban-solutions/bikeshare-traffic/traffic"
)

// BuildJSON serializes a traffic view wrapped in a Response
func BuildJSON(view *traffic.View) ([]byte, error) {
	return json.MarshalIndent(WrapView(view), "", "  ")
}
