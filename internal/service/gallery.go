package service

import (
	"context"
	"net/url"
	"strconv"

	"exusiai.dev/chartboard/internal/app/appconfig"
	"exusiai.dev/chartboard/internal/gallery"
	"exusiai.dev/chartboard/internal/model"
	"exusiai.dev/chartboard/internal/pkg/i18n"
)

const (
	LayoutWide = "wide"
	NoticeIcon = "💡"
)

type Gallery struct {
	Config *appconfig.Config
}

func NewGallery(conf *appconfig.Config) *Gallery {
	return &Gallery{
		Config: conf,
	}
}

// Page describes the whole dashboard for locale. Chart image URLs carry the
// locale and seed so the page and its images always agree.
func (s *Gallery) Page(ctx context.Context, locale string, seed uint64) *model.Page {
	trans := i18n.Translator(locale)
	locale = trans.Locale()

	return &model.Page{
		Locale:   locale,
		Title:    i18n.T(trans, i18n.KeyPageTitle),
		TabTitle: i18n.T(trans, i18n.KeyPageTabTitle),
		Caption:  i18n.T(trans, i18n.KeyPageCaption),
		Layout:   LayoutWide,
		Seed:     seed,
		Sections: s.Sections(locale, seed),
		Notice: model.Notice{
			Icon: NoticeIcon,
			Text: i18n.T(trans, i18n.KeyPageNotice),
		},
	}
}

// Sections lists the numbered sections and their charts in display order.
func (s *Gallery) Sections(locale string, seed uint64) []model.Section {
	trans := i18n.Translator(locale)
	locale = trans.Locale()

	catalog := gallery.Catalog()
	sections := make([]model.Section, 0, len(catalog))
	for _, sec := range catalog {
		refs := make([]model.ChartRef, 0, len(sec.Charts))
		for _, id := range sec.Charts {
			c, _ := gallery.Lookup(id)
			w, h := c.Size.Pixels(s.Config.RenderDPI)
			refs = append(refs, model.ChartRef{
				ID:       c.ID,
				Title:    i18n.T(trans, gallery.TitleKey(c.ID)),
				Kind:     c.Kind,
				ImageURL: ImageURL(c.ID, locale, seed),
				Width:    w,
				Height:   h,
			})
		}
		sections = append(sections, model.Section{
			Index:   sec.Index,
			Heading: i18n.T(trans, sec.Key),
			Charts:  refs,
		})
	}
	return sections
}

// Figure builds the figure of chart id. It returns gallery.ErrUnknownChart
// for ids outside the catalog.
func (s *Gallery) Figure(ctx context.Context, id, locale string, seed uint64) (*model.Figure, error) {
	return gallery.Build(id, gallery.Env{
		Trans: i18n.Translator(locale),
		Seed:  seed,
	})
}

// ImageURL is where the dashboard loads the PNG of chart id from.
func ImageURL(id, locale string, seed uint64) string {
	q := url.Values{}
	q.Set("lang", locale)
	q.Set("seed", strconv.FormatUint(seed, 10))
	return "/charts/" + url.PathEscape(id) + ".png?" + q.Encode()
}
