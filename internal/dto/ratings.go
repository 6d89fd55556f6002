package dto

type RateProductRequestDTO struct {
	ProductID int    `json:"product_id" example:"10"`
	Rating    int    `json:"rating" example:"5"`
	Comment   string `json:"comment" example:"Great quality"`
}

type RateShopRequestDTO struct {
	ShopID  int    `json:"shop_id" example:"3"`
	Rating  int    `json:"rating" example:"4"`
	Comment string `json:"comment" example:"Fast shipping"`
}
