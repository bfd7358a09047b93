package web

import (
	g "github.com/maragudk/gomponents"
	. "github.com/maragudk/gomponents/html"

	"github.com/gideonakwabengkankam-crypto/Humjibre-SDA-church/constants"
)

type NewsItem struct {
	Title  string
	Author string
	Date   string
}

type HomeProps struct {
	SiteName string
	News     []NewsItem
}

func NavbarComponent(props HomeProps) g.Node {
	return Nav(Class("nav"),
		Div(Class("nav-left"),
			Div(Class("brand"), A(Href("/"), g.Text(props.SiteName))),
		),
		Div(Class("nav-links nav-right"),
			A(Href("/api/news/list"), g.Text("News")),
			A(Href("/api/photos/list"), g.Text("Gallery")),
		),
	)
}

func FooterComponent() g.Node {
	return Footer(Class("footer"),
		P(Class("with-love"),
			Small(
				A(Href(constants.PUBLIC_URL),
					g.Text("Sefwi Humjibre Seventh-day Adventist Church")),
			),
		),
	)
}

func NewsListComponent(items []NewsItem) g.Node {
	if len(items) == 0 {
		return P(g.Text("No news yet. Check back soon!"))
	}
	return Ul(Class("news-list"),
		g.Group(g.Map(items, func(item NewsItem) g.Node {
			return Li(
				Strong(g.Text(item.Title)),
				g.Textf(" — %s, %s", item.Author, item.Date),
			)
		})),
	)
}

// HomePage is the public landing page: latest news plus a pointer to
// the donation and contact endpoints.
func HomePage(props HomeProps) g.Node {
	return Doctype(
		HTML(
			Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
				TitleEl(g.Text(props.SiteName)),
			),
			Body(
				Div(Class("container"),
					NavbarComponent(props),
					Main(
						H1(g.Text(props.SiteName)),
						H2(g.Text("Latest News")),
						NewsListComponent(props.News),
						H2(g.Text("Support Us")),
						P(g.Text("Donations are accepted by mobile money through the donation API. May God bless you abundantly!")),
					),
				),
				FooterComponent(),
			),
		),
	)
}
