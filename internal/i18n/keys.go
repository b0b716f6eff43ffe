package i18n

type Key int

const (
	YourLocation Key = iota
	YouAreHere
	LoadingMap
	ShowList
	Settings
	DarkMode
	HideAllMarkers
	ShowAllMarkers
	HideRegularMarkers
	ShowRegularMarkers
	HideFavoriteMarkers
	ShowFavoriteMarkers
	RemoveFromFavorites
	AddToFavorites
	CloseMenu
	AllMarkers
	FavoriteMarkers
	Capacity
	SelectLanguage

	numKeys
)

var keyNames = [numKeys]string{
	YourLocation:        "yourLocation",
	YouAreHere:          "youAreHere",
	LoadingMap:          "loadingMap",
	ShowList:            "showList",
	Settings:            "settings",
	DarkMode:            "darkMode",
	HideAllMarkers:      "hideAllMarkers",
	ShowAllMarkers:      "showAllMarkers",
	HideRegularMarkers:  "hideRegularMarkers",
	ShowRegularMarkers:  "showRegularMarkers",
	HideFavoriteMarkers: "hideFavoriteMarkers",
	ShowFavoriteMarkers: "showFavoriteMarkers",
	RemoveFromFavorites: "removeFromFavorites",
	AddToFavorites:      "addToFavorites",
	CloseMenu:           "closeMenu",
	AllMarkers:          "allMarkers",
	FavoriteMarkers:     "favoriteMarkers",
	Capacity:            "capacity",
	SelectLanguage:      "selectLanguage",
}

var keyIndex = func() map[string]Key {
	m := make(map[string]Key, numKeys)
	for k, name := range keyNames {
		m[name] = Key(k)
	}
	return m
}()

// Keys returns every message key.
func Keys() []Key {
	out := make([]Key, numKeys)
	for i := range out {
		out[i] = Key(i)
	}
	return out
}

func (k Key) String() string {
	if k < 0 || k >= numKeys {
		return ""
	}
	return keyNames[k]
}

func ParseKey(s string) (Key, bool) {
	k, ok := keyIndex[s]
	return k, ok
}
