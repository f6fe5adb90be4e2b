// Package cpindex provides a compact code point to slot mapping for sparse
// sets of code points, as they occur in the Unihan database.
package cpindex

import "github.com/npillmayer/unihan/codepoint"

const (
	pageBits = 8
	pageSize = 1 << pageBits
	topSize  = (codepoint.Max >> pageBits) + 1 // 0x1100 pages cover all planes
)

// PagedMap maps code points (0..0x10FFFF) to slot IDs (uint32).
// It's a two-level page table:
//   - Top[hi] = page index (1..NumPages), or 0 meaning "page absent".
//   - Pages is a flat array of NumPages*256 entries.
//
// Slot 0 means "absent". Lookup is O(1) with two array reads.
//
// Memory:
//   - Top: 4352 * 4 = 17 KB
//   - Each populated page: 256 * 4 = 1 KB
//
// Unihan touches roughly 400 high-byte blocks, i.e. ~400 KB for pages.
type PagedMap struct {
	Top   [topSize]uint32 // page index (1-based); 0 means none
	Pages []uint32        // flat: NumPages*256
}

// Get returns the slot for cp. Returns 0 if absent.
func (m *PagedMap) Get(cp codepoint.Codepoint) uint32 {
	if cp > codepoint.Max {
		return 0
	}
	pi := m.Top[cp>>pageBits]
	if pi == 0 {
		return 0
	}
	base := int(pi-1) << pageBits
	return m.Pages[base+int(cp&(pageSize-1))]
}

// NumPages returns the number of allocated pages.
func (m *PagedMap) NumPages() int { return len(m.Pages) >> pageBits }

// ensurePage ensures that the page for high bits hi exists.
// Returns the 1-based page index.
func (m *PagedMap) ensurePage(hi uint32) uint32 {
	pi := m.Top[hi]
	if pi != 0 {
		return pi
	}
	m.Pages = append(m.Pages, make([]uint32, pageSize)...)
	pi = uint32(len(m.Pages) >> pageBits)
	m.Top[hi] = pi
	return pi
}

// Set sets mapping cp -> slot (slot may be 0 to clear).
// Code points beyond codepoint.Max are ignored.
func (m *PagedMap) Set(cp codepoint.Codepoint, slot uint32) {
	if cp > codepoint.Max {
		return
	}
	hi := uint32(cp >> pageBits)
	pi := m.Top[hi]
	if pi == 0 {
		if slot == 0 {
			return
		}
		pi = m.ensurePage(hi)
	}
	base := int(pi-1) << pageBits
	m.Pages[base+int(cp&(pageSize-1))] = slot
}
