package soap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// table decodes a response body and returns the named table node.
func table(t *testing.T, xml, name string) *Node {
	t.Helper()
	body, err := Decode([]byte(xml))
	require.NoError(t, err)
	return body.Path("Resp", name)
}

func TestNormalize(t *testing.T) {
	t.Run("absent table yields empty sequence", func(t *testing.T) {
		got := Normalize(nil, "item")
		require.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("multi-item table preserves source order", func(t *testing.T) {
		tbl := table(t, `<Envelope><Body><Resp><TBL>
			<item><VBELN>90001</VBELN><NETWR>10.00</NETWR></item>
			<item><VBELN>90002</VBELN><NETWR>20.00</NETWR></item>
			<item><VBELN>90003</VBELN><NETWR>30.00</NETWR></item>
		</TBL></Resp></Body></Envelope>`, "TBL")

		got := Normalize(tbl, "item")
		require.Len(t, got, 3)
		assert.Equal(t, "90001", got[0]["VBELN"])
		assert.Equal(t, "90002", got[1]["VBELN"])
		assert.Equal(t, "90003", got[2]["VBELN"])
	})

	t.Run("single item collapsed to a bare object yields singleton", func(t *testing.T) {
		// The remote XML-to-object mapping collapses a one-row table; the
		// row must still come back as a sequence of length 1.
		tbl := table(t, `<Envelope><Body><Resp><TBL>
			<item><VBELN>90001</VBELN><NETWR>10.00</NETWR></item>
		</TBL></Resp></Body></Envelope>`, "TBL")

		got := Normalize(tbl, "item")
		require.Len(t, got, 1)
		assert.Equal(t, "90001", got[0]["VBELN"])
		assert.Equal(t, "10.00", got[0]["NETWR"])
	})

	t.Run("table of record-shaped children without item wrapper", func(t *testing.T) {
		tbl := table(t, `<Envelope><Body><Resp><TBL>
			<row><ID>1</ID></row>
			<row><ID>2</ID></row>
		</TBL></Resp></Body></Envelope>`, "TBL")

		got := Normalize(tbl, "item")
		require.Len(t, got, 2)
		assert.Equal(t, "1", got[0]["ID"])
		assert.Equal(t, "2", got[1]["ID"])
	})

	t.Run("table that is itself one collapsed row yields singleton", func(t *testing.T) {
		tbl := table(t, `<Envelope><Body><Resp><TBL>
			<VBELN>90001</VBELN><NETWR>10.00</NETWR>
		</TBL></Resp></Body></Envelope>`, "TBL")

		got := Normalize(tbl, "item")
		require.Len(t, got, 1)
		assert.Equal(t, "90001", got[0]["VBELN"])
	})

	t.Run("empty table yields empty sequence", func(t *testing.T) {
		tbl := table(t, `<Envelope><Body><Resp><TBL></TBL></Resp></Body></Envelope>`, "TBL")

		got := Normalize(tbl, "item")
		require.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("normalization is deterministic", func(t *testing.T) {
		tbl := table(t, `<Envelope><Body><Resp><TBL>
			<item><A>1</A></item>
			<item><A>2</A></item>
		</TBL></Resp></Body></Envelope>`, "TBL")

		first := Normalize(tbl, "item")
		second := Normalize(tbl, "item")
		assert.Equal(t, first, second)
	})
}

func TestFields(t *testing.T) {
	t.Run("flattens leaf children and skips nested elements", func(t *testing.T) {
		body, err := Decode([]byte(`<Envelope><Body><Resp>
			<NAME>Acme</NAME>
			<CITY>Chennai</CITY>
			<TBL><item><X>1</X></item></TBL>
		</Resp></Body></Envelope>`))
		require.NoError(t, err)

		got := body.Child("Resp").Fields()
		assert.Equal(t, Record{"NAME": "Acme", "CITY": "Chennai"}, got)
	})

	t.Run("last duplicate sibling wins", func(t *testing.T) {
		body, err := Decode([]byte(`<Envelope><Body><Resp>
			<K>first</K><K>second</K>
		</Resp></Body></Envelope>`))
		require.NoError(t, err)

		got := body.Child("Resp").Fields()
		assert.Equal(t, "second", got["K"])
	})
}

func TestNormalizeField(t *testing.T) {
	// resp decodes an envelope and returns its response element.
	resp := func(t *testing.T, xml string) *Node {
		t.Helper()
		body, err := Decode([]byte(xml))
		require.NoError(t, err)
		node := body.Child("Resp")
		require.NotNil(t, node)
		return node
	}

	t.Run("repeated table siblings yield one record per sibling", func(t *testing.T) {
		r := resp(t, `<Envelope><Body><Resp>
			<TBL><VBELN>80001</VBELN><NETWR>10.00</NETWR></TBL>
			<TBL><VBELN>80002</VBELN><NETWR>20.00</NETWR></TBL>
			<TBL><VBELN>80003</VBELN><NETWR>30.00</NETWR></TBL>
		</Resp></Body></Envelope>`)

		got := NormalizeField(r, "TBL", "item")
		require.Len(t, got, 3)
		assert.Equal(t, "80001", got[0]["VBELN"])
		assert.Equal(t, "80002", got[1]["VBELN"])
		assert.Equal(t, "80003", got[2]["VBELN"])
	})

	t.Run("item rows with no table wrapper yield one record per item", func(t *testing.T) {
		r := resp(t, `<Envelope><Body><Resp>
			<item><VBELN>80001</VBELN></item>
			<item><VBELN>80002</VBELN></item>
		</Resp></Body></Envelope>`)

		got := NormalizeField(r, "TBL", "item")
		require.Len(t, got, 2)
		assert.Equal(t, "80001", got[0]["VBELN"])
		assert.Equal(t, "80002", got[1]["VBELN"])
	})

	t.Run("single table delegates to the shape-based checks", func(t *testing.T) {
		r := resp(t, `<Envelope><Body><Resp><TBL>
			<item><VBELN>80001</VBELN></item>
			<item><VBELN>80002</VBELN></item>
		</TBL></Resp></Body></Envelope>`)

		got := NormalizeField(r, "TBL", "item")
		require.Len(t, got, 2)
		assert.Equal(t, "80001", got[0]["VBELN"])
		assert.Equal(t, "80002", got[1]["VBELN"])
	})

	t.Run("absent table and no items yields empty sequence", func(t *testing.T) {
		r := resp(t, `<Envelope><Body><Resp><RETURN_CODE>0</RETURN_CODE></Resp></Body></Envelope>`)

		got := NormalizeField(r, "TBL", "item")
		require.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("nil response yields empty sequence", func(t *testing.T) {
		got := NormalizeField(nil, "TBL", "item")
		require.NotNil(t, got)
		assert.Empty(t, got)
	})
}
