package types

// Restaurant is the external-facing record shape shared by search results and
// liked-restaurant listings. ID is the Kakao place identifier, never the local
// database key.
type Restaurant struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	RoadAddress string `json:"roadAddress"`
	X           string `json:"x"`
	Y           string `json:"y"`
	PlaceURL    string `json:"placeUrl"`
}
