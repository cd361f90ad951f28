package soap

// Record is one flat field→value row of a normalized collection.
type Record = map[string]string

// Fields flattens the node's leaf children into a Record. Children that carry
// nested elements are skipped; on duplicate names the last sibling wins.
func (n *Node) Fields() Record {
	rec := Record{}
	if n == nil {
		return rec
	}
	for _, c := range n.Children {
		if c.HasElements() {
			continue
		}
		rec[c.Name] = c.Text()
	}
	return rec
}

// NormalizeField yields the ordered record sequence for the named table
// field of a response node. The remote service encodes a row sequence in one
// of several shapes, all of which must resolve the same way:
//
//  1. field absent             -> item rows directly under resp, else empty
//  2. field repeated as sibs   -> one record per sibling, document order
//  3. single field             -> Normalize on that node
//
// The result is never nil and the mapping is deterministic.
func NormalizeField(resp *Node, tableName, itemName string) []Record {
	if resp == nil {
		return []Record{}
	}

	tables := resp.Items(tableName)
	switch len(tables) {
	case 0:
		// Some operations emit rows with no table wrapper at all.
		records := []Record{}
		for _, item := range resp.Items(itemName) {
			records = append(records, item.Fields())
		}
		return records
	case 1:
		return Normalize(tables[0], itemName)
	default:
		// The table element itself repeats once per row.
		records := make([]Record, 0, len(tables))
		for _, table := range tables {
			records = append(records, table.Fields())
		}
		return records
	}
}

// Normalize yields an ordered sequence of records for a table node that may
// encode zero, one, or many rows. The remote service's XML-to-object mapping
// collapses a one-row table into a bare object, so cardinality is inferred
// from shape. Check order matters:
//
//  1. absent table        -> empty
//  2. table/<item>...     -> one record per item, document order
//  3. table of bare rows  -> one record per element child
//  4. table is one row    -> singleton
//  5. anything else       -> empty
//
// The result is never nil and the mapping is deterministic.
func Normalize(table *Node, itemName string) []Record {
	records := []Record{}
	if table == nil {
		return records
	}

	if items := table.Items(itemName); len(items) > 0 {
		for _, item := range items {
			records = append(records, item.Fields())
		}
		return records
	}

	// No item wrapper. Element children that are themselves record-shaped mean
	// the table node is the sequence; leaf children mean the table node is a
	// single collapsed row.
	rowShaped := false
	for _, c := range table.Children {
		if c.HasElements() {
			rowShaped = true
			break
		}
	}
	if rowShaped {
		for _, c := range table.Children {
			if c.HasElements() {
				records = append(records, c.Fields())
			}
		}
		return records
	}

	if len(table.Children) > 0 {
		records = append(records, table.Fields())
	}
	return records
}
