package lintreport_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoosis/modelci/pkg/lintreport"
)

func TestRenderHTML_EmitsDisclosureBlocks_When_GivenMixedResults(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	require.NoError(t, lintreport.Render(&out, decodeReport(t, reportDoc), lintreport.HTML))
	got := out.String()

	// Passing file carries the checkmark in its summary line.
	assert.Contains(t, got, "<summary>&#x2705;&nbsp; acl/openconfig-acl.yang</summary>")
	assert.Contains(t, got, "<summary>&#x2705;&nbsp; pyang</summary>")

	// Build failure renders its message as a list item under a failed
	// summary.
	assert.Contains(t, got, "<summary>&#x26D4;&nbsp; broken/openconfig-broken.yang</summary>")
	assert.Contains(t, got, "  <li>did not have a valid build file</li>")

	// Failing test nests its diagnostics, pre-quoted.
	assert.Contains(t, got, "<summary>&#x26D4;&nbsp; network-instance/openconfig-network-instance.yang</summary>")
	assert.Contains(t, got, "<summary>&#x26D4;&nbsp; oc-pyang</summary>")
	assert.Contains(t, got, "  <li>network-instance (100): <pre>bad pattern</pre></li>")

	// Suppressed warning stays out of the report.
	assert.NotContains(t, got, "style nit")

	// Every disclosure block is closed.
	assert.Equal(t, strings.Count(got, "<details>"), strings.Count(got, "</details>"))
}

func TestRender_ModesAreInformationallyEquivalent_When_GivenSameReport(t *testing.T) {
	t.Parallel()

	var md, html bytes.Buffer
	require.NoError(t, lintreport.Render(&md, decodeReport(t, reportDoc), lintreport.Markdown))
	require.NoError(t, lintreport.Render(&html, decodeReport(t, reportDoc), lintreport.HTML))

	for _, label := range []string{
		"acl/openconfig-acl.yang",
		"broken/openconfig-broken.yang",
		"network-instance/openconfig-network-instance.yang",
		"oc-pyang",
		"pyang",
		"did not have a valid build file",
		"bad pattern",
	} {
		assert.Contains(t, md.String(), label, "markdown output should mention %q", label)
		assert.Contains(t, html.String(), label, "html output should mention %q", label)
	}
}

func TestRenderHTML_EmitsNothing_When_ReportIsEmpty(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	require.NoError(t, lintreport.Render(&out, decodeReport(t, `{"tests": {}}`), lintreport.HTML))
	assert.Empty(t, out.String())
}
