package models

import "time"

// Card представляет сохраненную банковскую карту.
// Создается только через validation.Validator и после создания не изменяется:
// редактирования нет, карту можно только удалить.
type Card struct {
	DateAdded       time.Time `json:"date_added"`       // DateAdded время добавления карты (порядок в списке)
	ID              string    `json:"id"`               // ID уникальный идентификатор записи (UUID)
	Nickname        string    `json:"nickname"`         // Nickname название карты (например, "Travel Visa")
	Name            string    `json:"name"`             // Name имя держателя карты (как на карте)
	Number          string    `json:"number"`           // Number номер карты, только цифры
	ExpirationMonth string    `json:"expiration_month"` // ExpirationMonth месяц окончания, до 2 цифр
	ExpirationYear  string    `json:"expiration_year"`  // ExpirationYear год окончания, до 4 цифр
	SecurityCode    string    `json:"security_code"`    // SecurityCode CVV/CVC код, ровно 3 цифры
}

// CardInput содержит сырые строки, введенные пользователем.
// Никаких гарантий формата: нормализация и проверка выполняются валидатором.
type CardInput struct {
	Nickname        string
	Name            string
	Number          string
	ExpirationMonth string
	ExpirationYear  string
	SecurityCode    string
}

// Clone возвращает копию карты, чтобы хранилище не отдавало наружу свои экземпляры
func (c *Card) Clone() *Card {
	clone := *c
	return &clone
}
