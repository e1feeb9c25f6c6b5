package i18n

var resources = map[string]map[string]string{
	"en": {
		"validation.valid.success":          "RSS uploaded successfully",
		"validation.invalid.nonvalidURL":    "The link must be a valid URL",
		"validation.invalid.noRSS":          "The resource does not contain valid RSS. Try again or replace with another link",
		"validation.invalid.duplicate":      "RSS already exists",
		"validation.invalid.networkError":   "Network error. Check your Internet connection",
		"validation.invalid.unknown":        "Something went wrong. Try again later",
		"interface.title":                   "RSS Reader",
		"interface.subtitle":                "Start reading RSS today! It's easy, it's pretty.",
		"interface.placeholder":             "RSS link",
		"interface.example":                 "Examples: https://lorem-rss.hexlet.app/feed",
		"interface.button":                  "Add",
		"interface.hexlet":                  "created by ",
		"interface.feeds":                   "Feeds",
		"interface.posts":                   "Posts",
		"interface.view":                    "Preview",
		"interface.modalWindow.fullArticle": "Read full article",
		"interface.modalWindow.closeModal":  "Close",
		"feeds.noTitle":                     "No title",
		"feeds.noDescription":               "No description",
	},
	"ru": {
		"validation.valid.success":          "RSS успешно загружен",
		"validation.invalid.nonvalidURL":    "Ссылка должна быть валидным URL",
		"validation.invalid.noRSS":          "Ресурс не содержит валидный RSS. Попробуйте снова или замените ссылку",
		"validation.invalid.duplicate":      "RSS уже существует",
		"validation.invalid.networkError":   "Ошибка сети. Проверьте подключение к Интернету",
		"validation.invalid.unknown":        "Что-то пошло не так. Попробуйте позже",
		"interface.title":                   "RSS агрегатор",
		"interface.subtitle":                "Начните читать RSS сегодня! Это легко, это красиво.",
		"interface.placeholder":             "Ссылка RSS",
		"interface.example":                 "Пример: https://lorem-rss.hexlet.app/feed",
		"interface.button":                  "Добавить",
		"interface.hexlet":                  "создано в ",
		"interface.feeds":                   "Фиды",
		"interface.posts":                   "Посты",
		"interface.view":                    "Просмотр",
		"interface.modalWindow.fullArticle": "Читать полностью",
		"interface.modalWindow.closeModal":  "Закрыть",
		"feeds.noTitle":                     "Без названия",
		"feeds.noDescription":               "Без описания",
	},
}
