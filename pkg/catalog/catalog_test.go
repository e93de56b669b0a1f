package catalog_test

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rishadfb/email-creation/pkg/catalog"
	"github.com/rishadfb/email-creation/pkg/render"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"catalog.yaml": &fstest.MapFile{Data: []byte(`
templates:
  - id: welcome_email
    category: welcome
    description: Welcome email for new customers
    file: welcome/welcome_email.html
    slots: [subject, preheader, headline, HERO_IMAGE, cta_url]
    blocks: [cta_button]
    defaults:
      cta_url: "#"
  - id: product_launch
    category: announcement
    description: Product announcement email
    file: announcements/product_launch.html
    slots: [subject, preheader, headline]
`)},
		"welcome/welcome_email.html": &fstest.MapFile{Data: []byte(
			`<title>{{subject}}</title><span>{{preheader}}</span><h1>{{headline}}</h1>` +
				`<img src="{{HERO_IMAGE}}">{% if cta_button %}<a href="{{cta_url}}">go</a>{% endif %}`)},
		"announcements/product_launch.html": &fstest.MapFile{Data: []byte(
			`<title>{{subject}}</title><span>{{preheader}}</span><h1>{{headline}}</h1>`)},
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("loads all valid templates", func(t *testing.T) {
		t.Parallel()

		c, err := catalog.Load(testFS())
		require.NoError(t, err)

		list := c.List()
		require.Len(t, list, 2)
		assert.Equal(t, "product_launch", list[0].ID)
		assert.Equal(t, catalog.CategoryAnnouncement, list[0].Category)
		assert.Equal(t, "welcome_email", list[1].ID)
	})

	t.Run("list order is stable across calls", func(t *testing.T) {
		t.Parallel()

		c, err := catalog.Load(testFS())
		require.NoError(t, err)
		assert.Equal(t, c.List(), c.List())
	})

	t.Run("missing manifest", func(t *testing.T) {
		t.Parallel()

		_, err := catalog.Load(fstest.MapFS{})
		assert.ErrorIs(t, err, catalog.ErrManifestInvalid)
	})

	t.Run("unparseable manifest", func(t *testing.T) {
		t.Parallel()

		fsys := fstest.MapFS{
			"catalog.yaml": &fstest.MapFile{Data: []byte("templates: [broken")},
		}
		_, err := catalog.Load(fsys)
		assert.ErrorIs(t, err, catalog.ErrManifestInvalid)
	})

	t.Run("custom manifest path", func(t *testing.T) {
		t.Parallel()

		fsys := testFS()
		fsys["manifest/index.yaml"] = fsys["catalog.yaml"]
		delete(fsys, "catalog.yaml")

		c, err := catalog.Load(fsys, catalog.WithManifest("manifest/index.yaml"))
		require.NoError(t, err)
		assert.Len(t, c.List(), 2)
	})

	t.Run("skips template with broken markup", func(t *testing.T) {
		t.Parallel()

		fsys := testFS()
		fsys["welcome/welcome_email.html"] = &fstest.MapFile{Data: []byte("<h1>{{headline</h1>")}

		c, err := catalog.Load(fsys)
		require.NoError(t, err)

		list := c.List()
		require.Len(t, list, 1)
		assert.Equal(t, "product_launch", list[0].ID)
	})

	t.Run("skips template with missing markup file", func(t *testing.T) {
		t.Parallel()

		fsys := testFS()
		delete(fsys, "welcome/welcome_email.html")

		c, err := catalog.Load(fsys)
		require.NoError(t, err)
		assert.Len(t, c.List(), 1)
	})

	t.Run("skips template whose markup uses undeclared slot", func(t *testing.T) {
		t.Parallel()

		fsys := testFS()
		fsys["announcements/product_launch.html"] = &fstest.MapFile{Data: []byte(
			`<title>{{subject}}</title><span>{{preheader}}</span><h1>{{headline}}</h1><p>{{surprise}}</p>`)}

		c, err := catalog.Load(fsys)
		require.NoError(t, err)
		assert.Len(t, c.List(), 1)
	})

	t.Run("skips template with declared slot missing from markup", func(t *testing.T) {
		t.Parallel()

		fsys := testFS()
		fsys["announcements/product_launch.html"] = &fstest.MapFile{Data: []byte(
			`<title>{{subject}}</title><span>{{preheader}}</span>`)}

		c, err := catalog.Load(fsys)
		require.NoError(t, err)
		assert.Len(t, c.List(), 1)
	})

	t.Run("skips template with default for undeclared slot", func(t *testing.T) {
		t.Parallel()

		fsys := fstest.MapFS{
			"catalog.yaml": &fstest.MapFile{Data: []byte(`
templates:
  - id: welcome_email
    category: welcome
    file: welcome_email.html
    slots: [headline]
    defaults:
      cta_url: "#"
`)},
			"welcome_email.html": &fstest.MapFile{Data: []byte("<h1>{{headline}}</h1>")},
		}

		_, err := catalog.Load(fsys)
		assert.ErrorIs(t, err, catalog.ErrNoTemplates)
	})

	t.Run("skips duplicate ids keeping the first", func(t *testing.T) {
		t.Parallel()

		fsys := fstest.MapFS{
			"catalog.yaml": &fstest.MapFile{Data: []byte(`
templates:
  - id: welcome_email
    category: welcome
    description: first
    file: a.html
    slots: [headline]
  - id: welcome_email
    category: welcome
    description: second
    file: b.html
    slots: [headline]
`)},
			"a.html": &fstest.MapFile{Data: []byte("<h1>{{headline}}</h1>")},
			"b.html": &fstest.MapFile{Data: []byte("<h2>{{headline}}</h2>")},
		}

		c, err := catalog.Load(fsys)
		require.NoError(t, err)

		list := c.List()
		require.Len(t, list, 1)
		assert.Equal(t, "first", list[0].Description)
	})

	t.Run("fails when nothing loads", func(t *testing.T) {
		t.Parallel()

		fsys := testFS()
		delete(fsys, "welcome/welcome_email.html")
		delete(fsys, "announcements/product_launch.html")

		_, err := catalog.Load(fsys)
		assert.ErrorIs(t, err, catalog.ErrNoTemplates)
	})

	t.Run("derives description when manifest omits it", func(t *testing.T) {
		t.Parallel()

		fsys := fstest.MapFS{
			"catalog.yaml": &fstest.MapFile{Data: []byte(`
templates:
  - id: monthly_newsletter
    category: newsletter
    file: monthly_newsletter.html
    slots: [headline]
`)},
			"monthly_newsletter.html": &fstest.MapFile{Data: []byte("<h1>{{headline}}</h1>")},
		}

		c, err := catalog.Load(fsys)
		require.NoError(t, err)

		d, err := c.Get("monthly_newsletter")
		require.NoError(t, err)
		assert.Equal(t, "Monthly Newsletter email in the newsletter category", d.Description)
	})
}

func TestCatalog_Lookups(t *testing.T) {
	t.Parallel()

	c, err := catalog.Load(testFS())
	require.NoError(t, err)

	t.Run("get known template", func(t *testing.T) {
		t.Parallel()

		d, err := c.Get("welcome_email")
		require.NoError(t, err)
		assert.Equal(t, catalog.CategoryWelcome, d.Category)
		assert.Equal(t, []string{"HERO_IMAGE"}, d.ImageSlots())
		assert.Equal(t, map[string]string{"cta_url": "#"}, d.Defaults)
	})

	t.Run("get unknown template", func(t *testing.T) {
		t.Parallel()

		_, err := c.Get("no_such_template")
		assert.ErrorIs(t, err, catalog.ErrTemplateNotFound)
	})

	t.Run("raw markup round trips", func(t *testing.T) {
		t.Parallel()

		raw, err := c.RawMarkup("product_launch")
		require.NoError(t, err)
		assert.Contains(t, raw, "{{headline}}")

		_, err = c.RawMarkup("no_such_template")
		assert.ErrorIs(t, err, catalog.ErrTemplateNotFound)
	})

	t.Run("compiled template renders", func(t *testing.T) {
		t.Parallel()

		tmpl, err := c.Template("product_launch")
		require.NoError(t, err)

		out, err := tmpl.Render(render.Values{Slots: map[string]string{
			"subject":   "Launch",
			"preheader": "It is here",
			"headline":  "Now live",
		}})
		require.NoError(t, err)
		assert.Contains(t, out, "<h1>Now live</h1>")

		_, err = c.Template("no_such_template")
		assert.ErrorIs(t, err, catalog.ErrTemplateNotFound)
	})
}
