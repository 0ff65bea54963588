package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type PageConfig struct {
	Title       string
	Description string
	OGImage     string

	// LiveURL is the websocket path the client script connects to. Empty
	// disables the script.
	LiveURL string
}

func Layout(config PageConfig, content ...g.Node) g.Node {
	if config.Title == "" {
		config.Title = "Taskify"
	}

	if config.OGImage == "" {
		config.OGImage = "/static/images/og-image.jpg"
	}

	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				Meta(g.Attr("http-equiv", "Accept-CH"), Content("Sec-CH-Viewport-Width")),
				TitleEl(g.Text(config.Title)),
				g.If(config.Description != "", Meta(Name("description"), Content(config.Description))),

				Meta(g.Attr("property", "og:title"), Content(config.Title)),
				g.If(config.Description != "", Meta(g.Attr("property", "og:description"), Content(config.Description))),
				Meta(g.Attr("property", "og:type"), Content("website")),
				Meta(g.Attr("property", "og:image"), Content(config.OGImage)),

				Link(Rel("stylesheet"), Href("/static/styles.css")),

				Script(Src("https://code.iconify.design/1/1.0.7/iconify.min.js")),
			),
			Body(
				Class("App"),
				g.If(config.LiveURL != "", g.Attr("data-live-url", config.LiveURL)),
				g.Group(content),

				g.If(config.LiveURL != "", Script(Type("module"), Src("/static/js/live.js"))),
			),
		),
	})
}
