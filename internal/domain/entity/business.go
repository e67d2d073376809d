package entity

// Business is the single per-tenant storefront configuration. It is edited
// by the merchant and never deleted.
type Business struct {
	ID           string `json:"id" firestore:"id"`
	Name         string `json:"name" firestore:"name"`
	Whatsapp     string `json:"whatsapp" firestore:"whatsapp"`
	Address      string `json:"address" firestore:"address"`
	WorkingHours string `json:"working_hours" firestore:"workingHours"`
	DeliveryFee  int64  `json:"delivery_fee" firestore:"deliveryFee"`
	BankDetails  string `json:"bank_details" firestore:"bankDetails"`
	Tone         string `json:"tone" firestore:"tone"`
}
