package i18n

type table = [numKeys]string

var tables = map[Lang]*table{
	English: &english,
	Dutch:   &dutch,
	German:  &german,
}

var english = table{
	YourLocation:        "Your Location",
	YouAreHere:          "You are here.",
	LoadingMap:          "Loading map...",
	ShowList:            "Show List",
	Settings:            "Settings",
	DarkMode:            "Dark Mode",
	HideAllMarkers:      "Hide All Markers",
	ShowAllMarkers:      "Show All Markers",
	HideRegularMarkers:  "Hide Regular Markers",
	ShowRegularMarkers:  "Show Regular Markers",
	HideFavoriteMarkers: "Hide Favorite Markers",
	ShowFavoriteMarkers: "Show Favorite Markers",
	RemoveFromFavorites: "Click to remove from favorites",
	AddToFavorites:      "Click to add to favorites",
	CloseMenu:           "Close Menu",
	AllMarkers:          "All Markers",
	FavoriteMarkers:     "Favorite Markers",
	Capacity:            "Capacity",
	SelectLanguage:      "Select Language",
}

var dutch = table{
	YourLocation:        "Jouw locatie",
	YouAreHere:          "Je bent hier.",
	LoadingMap:          "Kaart laden...",
	ShowList:            "Toon lijst",
	Settings:            "Instellingen",
	DarkMode:            "Donkere modus",
	HideAllMarkers:      "Verberg alle markers",
	ShowAllMarkers:      "Toon alle markers",
	HideRegularMarkers:  "Verberg gewone markers",
	ShowRegularMarkers:  "Toon gewone markers",
	HideFavoriteMarkers: "Verberg favoriete markers",
	ShowFavoriteMarkers: "Toon favoriete markers",
	RemoveFromFavorites: "Klik om uit favorieten te verwijderen",
	AddToFavorites:      "Klik om aan favorieten toe te voegen",
	CloseMenu:           "Sluit menu",
	AllMarkers:          "Alle Markers",
	FavoriteMarkers:     "Favoriete Markers",
	Capacity:            "Capaciteit",
	SelectLanguage:      "Kies taal",
}

var german = table{
	YourLocation:        "Dein Standort",
	YouAreHere:          "Du bist hier.",
	LoadingMap:          "Karte wird geladen...",
	ShowList:            "Liste anzeigen",
	Settings:            "Einstellungen",
	DarkMode:            "Dunkler Modus",
	HideAllMarkers:      "Alle Markierungen ausblenden",
	ShowAllMarkers:      "Alle Markierungen anzeigen",
	HideRegularMarkers:  "Gewöhnliche Markierungen ausblenden",
	ShowRegularMarkers:  "Gewöhnliche Markierungen anzeigen",
	HideFavoriteMarkers: "Favorisierte Markierungen ausblenden",
	ShowFavoriteMarkers: "Favorisierte Markierungen anzeigen",
	RemoveFromFavorites: "Zum Entfernen von Favoriten klicken",
	AddToFavorites:      "Zum Hinzufügen zu Favoriten klicken",
	CloseMenu:           "Menü schließen",
	AllMarkers:          "Alle Markierungen",
	FavoriteMarkers:     "Favorisierte Markierungen",
	Capacity:            "Kapazität",
	SelectLanguage:      "Sprache auswählen",
}
