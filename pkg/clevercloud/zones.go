package clevercloud

// Zone is a deployment region of the platform. Tags qualify what a zone may
// host, such as "for:applications" or "certification:hds".
type Zone struct {
	ID          string   `json:"id"`
	City        string   `json:"city"`
	Country     string   `json:"country"`
	Name        string   `json:"name"`
	CountryCode string   `json:"countryCode"`
	Latitude    float64  `json:"lat"`
	Longitude   float64  `json:"lon"`
	Tags        []string `json:"tags"`
}

// HasTag reports whether the zone carries the given tag.
func (z *Zone) HasTag(tag string) bool {
	for _, t := range z.Tags {
		if t == tag {
			return true
		}
	}

	return false
}
