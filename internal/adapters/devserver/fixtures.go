package devserver

import (
	"jizzakh_hotels/internal/domain"
	"jizzakh_hotels/internal/i18n"
)

// seedHotels returns the development catalog: one mountain and one desert
// hotel around Jizzakh, each fully localized in en/uz/ru.
func seedHotels() []domain.Hotel {
	rooms := []domain.Room{
		{
			ID: 1,
			Type: i18n.Text{
				EN: "Deluxe Room",
				UZ: "Deluxe xona",
				RU: "Делюкс номер",
			},
			Description: i18n.Text{
				EN: "Spacious deluxe room with a balcony and city view.",
				UZ: "Balkon va shahar manzarasiga ega keng deluxe xona.",
				RU: "Просторный делюкс номер с балконом и видом на город.",
			},
			Price:    120,
			Capacity: 2,
			Image:    "/images/rooms/deluxe.jpg",
			Amenities: i18n.List{
				EN: []string{"Free WiFi", "Mini Bar", "Parking", "Breakfast Included"},
				UZ: []string{"Bepul WiFi", "Mini bar", "Avtoturargoh", "Nonushta kiritilgan"},
				RU: []string{"Бесплатный WiFi", "Мини-бар", "Парковка", "Завтрак включен"},
			},
		},
		{
			ID: 2,
			Type: i18n.Text{
				EN: "Standard Room",
				UZ: "Standart xona",
				RU: "Стандартный номер",
			},
			Description: i18n.Text{
				EN: "Comfortable standard room with all basic amenities.",
				UZ: "Barcha qulayliklarga ega qulay standart xona.",
				RU: "Уютный стандартный номер со всеми удобствами.",
			},
			Price:    80,
			Capacity: 2,
			Image:    "/images/rooms/standard.jpg",
			Amenities: i18n.List{
				EN: []string{"Free WiFi", "Parking"},
				UZ: []string{"Bepul WiFi", "Avtoturargoh"},
				RU: []string{"Бесплатный WiFi", "Парковка"},
			},
		},
		{
			ID: 3,
			Type: i18n.Text{
				EN: "Family Suite",
				UZ: "Oila uchun lyuks",
				RU: "Семейный люкс",
			},
			Description: i18n.Text{
				EN: "Large family suite with two bedrooms and kitchen.",
				UZ: "Ikki yotoq xonali va oshxonaga ega katta oilaviy lyuks.",
				RU: "Большой семейный люкс с двумя спальнями и кухней.",
			},
			Price:    200,
			Capacity: 4,
			Image:    "/images/rooms/family.jpg",
			Amenities: i18n.List{
				EN: []string{"Free WiFi", "Kitchen", "Parking", "Breakfast Included"},
				UZ: []string{"Bepul WiFi", "Oshxona", "Avtoturargoh", "Nonushta kiritilgan"},
				RU: []string{"Бесплатный WiFi", "Кухня", "Парковка", "Завтрак включен"},
			},
		},
	}

	return []domain.Hotel{
		{
			ID: 1,
			Name: i18n.Text{
				EN: "Zaamin Mountain Resort",
				UZ: "Zomin tog' kurorti",
				RU: "Горный курорт Заамин",
			},
			Description: i18n.Text{
				EN: "A serene resort in the Zaamin mountains with pine forests and fresh air.",
				UZ: "Zomin tog'laridagi qarag'ay o'rmonlari va toza havoga ega osoyishta kurort.",
				RU: "Спокойный курорт в Зааминских горах с сосновыми лесами и свежим воздухом.",
			},
			Location: domain.LocationMountain,
			Image:    "/images/hotels/zaamin.jpg",
			Rating:   4.8,
			Amenities: i18n.List{
				EN: []string{"Spa", "Restaurant", "Hiking Trails"},
				UZ: []string{"Spa", "Restoran", "Piyoda yo'llar"},
				RU: []string{"Спа", "Ресторан", "Пешие маршруты"},
			},
			Rooms: rooms,
		},
		{
			ID: 2,
			Name: i18n.Text{
				EN: "Aydar Desert Camp",
				UZ: "Aydar cho'l qarorgohi",
				RU: "Пустынный лагерь Айдар",
			},
			Description: i18n.Text{
				EN: "Comfortable stays on the edge of the Kyzylkum, near lake Aydarkul.",
				UZ: "Qizilqum chekkasida, Aydarko'l yaqinida qulay dam olish.",
				RU: "Комфортный отдых на краю Кызылкума, рядом с озером Айдаркуль.",
			},
			Location: domain.LocationDesert,
			Image:    "/images/hotels/aydar.jpg",
			Rating:   4.5,
			Amenities: i18n.List{
				EN: []string{"Restaurant", "Camel Rides", "Stargazing"},
				UZ: []string{"Restoran", "Tuya sayohati", "Yulduzlarni kuzatish"},
				RU: []string{"Ресторан", "Катание на верблюдах", "Наблюдение за звёздами"},
			},
			Rooms: rooms,
		},
	}
}
