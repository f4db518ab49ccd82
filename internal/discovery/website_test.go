package discovery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCandidatesFromHTML_FooterLink(t *testing.T) {
	html := `<html><body>
<main>Bienvenidos a Casa Loma</main>
<footer>
  <a href="https://instagram.com/casaloma_cartagena">Instagram</a>
</footer>
</body></html>`

	cs := CandidatesFromHTML(html)
	require.Len(t, cs, 1)
	assert.Equal(t, "casaloma_cartagena", cs[0].Handle)
	assert.Equal(t, SourceWebsiteFooter, cs[0].Source)
	assert.Equal(t, 0.95, cs[0].Confidence)
}

func TestCandidatesFromHTML_BodyPatterns(t *testing.T) {
	html := `<html><body>
<a href="https://www.instagram.com/cuenta_uno/">Follow us</a>
<p>Síguenos en instagr.am/cuenta_dos</p>
<p>Menciones: @cuenta_tres</p>
<p>Instagram: cuenta_cuatro</p>
<p>IG: @cuenta_cinco</p>
<script>{"instagram":"cuenta_seis"}</script>
</body></html>`

	cs := CandidatesFromHTML(html)
	handles := make([]string, len(cs))
	for i, c := range cs {
		handles[i] = c.Handle
		assert.Equal(t, SourceWebsite, c.Source)
		assert.Equal(t, 0.9, c.Confidence)
	}
	assert.ElementsMatch(t, []string{
		"cuenta_uno", "cuenta_dos", "cuenta_tres",
		"cuenta_cuatro", "cuenta_cinco", "cuenta_seis",
	}, handles)
}

func TestCandidatesFromHTML_FiltersReservedAndInvalid(t *testing.T) {
	html := `<html><body>
<a href="https://instagram.com/explore">explore</a>
<a href="https://instagram.com/accounts">accounts</a>
<a href="https://instagram.com/casaloma">real</a>
<p>@a</p>
</body></html>`

	cs := CandidatesFromHTML(html)
	require.Len(t, cs, 1)
	assert.Equal(t, "casaloma", cs[0].Handle)
}

func TestCandidatesFromHTML_FooterOutranksBodyDuplicate(t *testing.T) {
	html := `<html><body>
<p>@casaloma</p>
<footer><a href="https://instagram.com/casaloma">ig</a></footer>
</body></html>`

	cs := CandidatesFromHTML(html)
	require.Len(t, cs, 1)
	assert.Equal(t, SourceWebsiteFooter, cs[0].Source)
	assert.Equal(t, 0.95, cs[0].Confidence)
}

func TestCandidatesFromHTML_Empty(t *testing.T) {
	assert.Nil(t, CandidatesFromHTML(""))
	assert.Empty(t, CandidatesFromHTML("<html><body>nada</body></html>"))
}
