package dto

type RegionResponse struct {
	Pincode  string `json:"pincode"`
	City     string `json:"city"`
	State    string `json:"state"`
	District string `json:"district"`
	Zone     string `json:"zone"`
}
