package catalog

import "context"

type staticSource struct {
	apps []App
}

// NewStaticSource serves a fixed list of apps.
func NewStaticSource(apps ...App) Source {
	return &staticSource{apps: append([]App(nil), apps...)}
}

func (s *staticSource) List(ctx context.Context) ([]App, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return append([]App(nil), s.apps...), nil
}

// DemoApps is the catalog used when none is configured.
func DemoApps() []App {
	return []App{
		{ID: "1", Package: "org.drawer.demo.calculator", Name: "Calculator", Description: "Basic and scientific **calculations**."},
		{ID: "2", Package: "org.drawer.demo.calendar", Name: "Calendar", Description: "Events and reminders."},
		{ID: "3", Package: "org.drawer.demo.camera", Name: "Camera", Description: "Photos and video."},
		{ID: "4", Package: "org.drawer.demo.maps", Name: "Maps", Description: "Directions and places."},
		{ID: "5", Package: "org.drawer.demo.mail", Name: "Mail", Description: "Email client."},
		{ID: "6", Package: "org.drawer.demo.photos", Name: "Photos", Description: "Browse your library."},
		{ID: "7", Package: "org.drawer.demo.whatsapp", Name: "WhatsApp", Description: "Messaging."},
		{ID: "8", Package: "org.drawer.demo.settings", Name: "Settings", Description: "System preferences.", System: true},
	}
}
