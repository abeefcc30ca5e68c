package i18n

var catalog = map[string]map[string]string{
	"ru": {
		"greeting":   "Здравствуйте! Это бот склада плитки.",
		"welcome_id": "Ваш Telegram ID: %d",
		"ask_name":   "Как вас зовут?",
		"name_saved": "Приятно познакомиться, %s!",
		"main_menu":  "Главное меню:",
		"saved":      "Сохранено.",
		"cancelled":  "Отменено.",
		"unknown":    "Не понимаю. Воспользуйтесь меню.",

		"btn_products": "Товары",
		"btn_stands":   "Стенды",
		"btn_clients":  "Клиенты",
		"btn_pickup":   "Забор товара",
		"btn_planning": "Планирование",
		"btn_hours":    "Часы работы",
		"btn_admin":    "Админ",
		"btn_language": "Язык",
		"btn_back":     "Назад",

		"btn_clients_add":         "Добавить клиента",
		"btn_clients_search":      "Поиск",
		"btn_clients_ready_lier":  "Готов лиер",
		"btn_clients_processed":   "Обработан",
		"btn_clients_pickup_list": "Список на забор",

		"clients_enter_name":      "Имя клиента:",
		"clients_enter_city":      "Город:",
		"clients_enter_product":   "Недостающий товар:",
		"clients_remainder":       "Остаток:",
		"btn_remainder_none":      "Без остатка",
		"btn_remainder_enter":     "Указать остаток",
		"clients_enter_remainder": "Введите остаток:",
		"clients_enter_date":      "Дата (ДД.ММ.ГГГГ):",
		"clients_confirm":         "Проверьте данные:\n%s",
		"btn_confirm_save":        "Сохранить",
		"btn_confirm_edit":        "Изменить",
		"btn_confirm_cancel":      "Отмена",
		"clients_search_prompt":   "Введите имя или город клиента:",
		"clients_search_results":  "Найдено:\n%s\n\nВведите ID клиента:",
		"clients_search_none":     "Ничего не найдено.",
		"clients_ready_date":      "Дата готовности (ДД.ММ.ГГГГ):",
		"clients_processed_date":  "Дата обработки (ДД.ММ.ГГГГ):",
		"clients_processed_time":  "Время обработки (ЧЧ:ММ):",

		"pickup_query":       "Введите имя или город клиента:",
		"pickup_choose":      "Забрали всё или есть остаток?",
		"btn_pickup_all":     "Забрали всё",
		"btn_pickup_left":    "Есть остаток",
		"pickup_left_prompt": "Введите остаток:",
		"pickup_date":        "Дата забора (ДД.ММ.ГГГГ):",
		"pickup_list_empty":  "Клиентов с остатком нет.",

		"planning_type_prompt":   "Какое планирование показать?",
		"btn_planning_outbound":  "Выездные",
		"btn_planning_warehouse": "Склад",
		"planning_period_prompt": "За какой период?",
		"btn_period_today":       "Сегодня",
		"btn_period_tomorrow":    "Завтра",
		"btn_period_week":        "Неделя",
		"btn_period_month":       "Месяц",
		"btn_period_date":        "Дата",
		"planning_date_prompt":   "Введите дату (ДД.ММ.ГГГГ):",
		"planning_empty":         "На этот период задач нет.",

		"hours_date":    "Дата смены (ДД.ММ.ГГГГ):",
		"hours_start":   "Время начала (ЧЧ:ММ):",
		"hours_end":     "Время окончания (ЧЧ:ММ):",
		"hours_break":   "Был перерыв 30 минут?",
		"btn_break_yes": "Был",
		"btn_break_no":  "Не было",
		"hours_saved":   "Записано %.1f ч.",

		"btn_admin_roles":          "Роли",
		"btn_admin_performance":    "Выработка",
		"admin_role_user":          "Telegram ID пользователя:",
		"admin_role_set":           "Роль (GUEST, OUTBOUND, WAREHOUSE, MANAGER, BOSS, ADMIN):",
		"admin_role_done":          "Роль выдана.",
		"admin_performance_user":   "Имя сотрудника:",
		"admin_performance_period": "За какой период?",
		"admin_performance_date":   "Введите дату (ДД.ММ.ГГГГ):",
		"admin_performance_result": "Итого: %.1f ч.",

		"products_search": "Введите сорт, название или артикул:",
		"stands_search":   "Введите стенд, размер или артикул:",
		"search_results":  "Результаты:\n%s",

		"lang_prompt": "Выберите язык:",
		"lang_saved":  "Язык сохранён.",
	},
	"en": {
		"greeting":   "Hello! This is the tile warehouse bot.",
		"welcome_id": "Your Telegram ID: %d",
		"ask_name":   "What is your name?",
		"name_saved": "Nice to meet you, %s!",
		"main_menu":  "Main menu:",
		"saved":      "Saved.",
		"cancelled":  "Cancelled.",
		"unknown":    "I don't understand. Please use the menu.",

		"btn_products": "Products",
		"btn_stands":   "Stands",
		"btn_clients":  "Clients",
		"btn_pickup":   "Pickup",
		"btn_planning": "Planning",
		"btn_hours":    "Work hours",
		"btn_admin":    "Admin",
		"btn_language": "Language",
		"btn_back":     "Back",

		"btn_clients_add":         "Add client",
		"btn_clients_search":      "Search",
		"btn_clients_ready_lier":  "Ready lier",
		"btn_clients_processed":   "Processed",
		"btn_clients_pickup_list": "Pickup list",

		"clients_enter_name":      "Client name:",
		"clients_enter_city":      "City:",
		"clients_enter_product":   "Missing product:",
		"clients_remainder":       "Remainder:",
		"btn_remainder_none":      "No remainder",
		"btn_remainder_enter":     "Enter remainder",
		"clients_enter_remainder": "Enter the remainder:",
		"clients_enter_date":      "Date (DD.MM.YYYY):",
		"clients_confirm":         "Please review:\n%s",
		"btn_confirm_save":        "Save",
		"btn_confirm_edit":        "Edit",
		"btn_confirm_cancel":      "Cancel",
		"clients_search_prompt":   "Enter a client name or city:",
		"clients_search_results":  "Found:\n%s\n\nEnter the client ID:",
		"clients_search_none":     "Nothing found.",
		"clients_ready_date":      "Readiness date (DD.MM.YYYY):",
		"clients_processed_date":  "Processing date (DD.MM.YYYY):",
		"clients_processed_time":  "Processing time (HH:MM):",

		"pickup_query":       "Enter a client name or city:",
		"pickup_choose":      "Everything taken, or is there a remainder?",
		"btn_pickup_all":     "Took everything",
		"btn_pickup_left":    "Remainder left",
		"pickup_left_prompt": "Enter the remainder:",
		"pickup_date":        "Pickup date (DD.MM.YYYY):",
		"pickup_list_empty":  "No clients with a remainder.",

		"planning_type_prompt":   "Which planning board?",
		"btn_planning_outbound":  "Outbound",
		"btn_planning_warehouse": "Warehouse",
		"planning_period_prompt": "For which period?",
		"btn_period_today":       "Today",
		"btn_period_tomorrow":    "Tomorrow",
		"btn_period_week":        "Week",
		"btn_period_month":       "Month",
		"btn_period_date":        "Date",
		"planning_date_prompt":   "Enter a date (DD.MM.YYYY):",
		"planning_empty":         "No tasks for this period.",

		"hours_date":    "Shift date (DD.MM.YYYY):",
		"hours_start":   "Start time (HH:MM):",
		"hours_end":     "End time (HH:MM):",
		"hours_break":   "Was there a 30 minute break?",
		"btn_break_yes": "Yes",
		"btn_break_no":  "No",
		"hours_saved":   "Recorded %.1f h.",

		"btn_admin_roles":          "Roles",
		"btn_admin_performance":    "Performance",
		"admin_role_user":          "User's Telegram ID:",
		"admin_role_set":           "Role (GUEST, OUTBOUND, WAREHOUSE, MANAGER, BOSS, ADMIN):",
		"admin_role_done":          "Role granted.",
		"admin_performance_user":   "Employee name:",
		"admin_performance_period": "For which period?",
		"admin_performance_date":   "Enter a date (DD.MM.YYYY):",
		"admin_performance_result": "Total: %.1f h.",

		"products_search": "Enter a sort, name or article:",
		"stands_search":   "Enter a stand, size or article:",
		"search_results":  "Results:\n%s",

		"lang_prompt": "Choose a language:",
		"lang_saved":  "Language saved.",
	},
	"lv": {
		"greeting":   "Sveiki! Šis ir flīžu noliktavas bots.",
		"welcome_id": "Jūsu Telegram ID: %d",
		"ask_name":   "Kā jūs sauc?",
		"name_saved": "Prieks iepazīties, %s!",
		"main_menu":  "Galvenā izvēlne:",
		"saved":      "Saglabāts.",
		"cancelled":  "Atcelts.",
		"unknown":    "Nesaprotu. Lūdzu, izmantojiet izvēlni.",

		"btn_products": "Preces",
		"btn_stands":   "Stendi",
		"btn_clients":  "Klienti",
		"btn_pickup":   "Preču saņemšana",
		"btn_planning": "Plānošana",
		"btn_hours":    "Darba stundas",
		"btn_admin":    "Admins",
		"btn_language": "Valoda",
		"btn_back":     "Atpakaļ",

		"btn_clients_add":         "Pievienot klientu",
		"btn_clients_search":      "Meklēt",
		"btn_clients_ready_lier":  "Gatavs liers",
		"btn_clients_processed":   "Apstrādāts",
		"btn_clients_pickup_list": "Saņemšanas saraksts",

		"clients_enter_name":      "Klienta vārds:",
		"clients_enter_city":      "Pilsēta:",
		"clients_enter_product":   "Trūkstošā prece:",
		"clients_remainder":       "Atlikums:",
		"btn_remainder_none":      "Bez atlikuma",
		"btn_remainder_enter":     "Norādīt atlikumu",
		"clients_enter_remainder": "Ievadiet atlikumu:",
		"clients_enter_date":      "Datums (DD.MM.GGGG):",
		"clients_confirm":         "Pārbaudiet datus:\n%s",
		"btn_confirm_save":        "Saglabāt",
		"btn_confirm_edit":        "Labot",
		"btn_confirm_cancel":      "Atcelt",
		"clients_search_prompt":   "Ievadiet klienta vārdu vai pilsētu:",
		"clients_search_results":  "Atrasts:\n%s\n\nIevadiet klienta ID:",
		"clients_search_none":     "Nekas nav atrasts.",
		"clients_ready_date":      "Gatavības datums (DD.MM.GGGG):",
		"clients_processed_date":  "Apstrādes datums (DD.MM.GGGG):",
		"clients_processed_time":  "Apstrādes laiks (HH:MM):",

		"pickup_query":       "Ievadiet klienta vārdu vai pilsētu:",
		"pickup_choose":      "Paņemts viss vai ir atlikums?",
		"btn_pickup_all":     "Paņēmām visu",
		"btn_pickup_left":    "Ir atlikums",
		"pickup_left_prompt": "Ievadiet atlikumu:",
		"pickup_date":        "Saņemšanas datums (DD.MM.GGGG):",
		"pickup_list_empty":  "Nav klientu ar atlikumu.",

		"planning_type_prompt":   "Kuru plānošanu rādīt?",
		"btn_planning_outbound":  "Izbraukumi",
		"btn_planning_warehouse": "Noliktava",
		"planning_period_prompt": "Par kādu periodu?",
		"btn_period_today":       "Šodien",
		"btn_period_tomorrow":    "Rīt",
		"btn_period_week":        "Nedēļa",
		"btn_period_month":       "Mēnesis",
		"btn_period_date":        "Datums",
		"planning_date_prompt":   "Ievadiet datumu (DD.MM.GGGG):",
		"planning_empty":         "Šajā periodā uzdevumu nav.",

		"hours_date":    "Maiņas datums (DD.MM.GGGG):",
		"hours_start":   "Sākuma laiks (HH:MM):",
		"hours_end":     "Beigu laiks (HH:MM):",
		"hours_break":   "Vai bija 30 minūšu pārtraukums?",
		"btn_break_yes": "Bija",
		"btn_break_no":  "Nebija",
		"hours_saved":   "Reģistrētas %.1f h.",

		"btn_admin_roles":          "Lomas",
		"btn_admin_performance":    "Izstrāde",
		"admin_role_user":          "Lietotāja Telegram ID:",
		"admin_role_set":           "Loma (GUEST, OUTBOUND, WAREHOUSE, MANAGER, BOSS, ADMIN):",
		"admin_role_done":          "Loma piešķirta.",
		"admin_performance_user":   "Darbinieka vārds:",
		"admin_performance_period": "Par kādu periodu?",
		"admin_performance_date":   "Ievadiet datumu (DD.MM.GGGG):",
		"admin_performance_result": "Kopā: %.1f h.",

		"products_search": "Ievadiet šķiru, nosaukumu vai artikulu:",
		"stands_search":   "Ievadiet stendu, izmēru vai artikulu:",
		"search_results":  "Rezultāti:\n%s",

		"lang_prompt": "Izvēlieties valodu:",
		"lang_saved":  "Valoda saglabāta.",
	},
}
