package constituents

import "sort"

// SectorLine aggregates the holdings of one sector.
type SectorLine struct {
	Sector      string
	Holdings    int
	Weight      Percent // summed weights of the sector
	Share       Percent // sector weight over the snapshot total
	MarketValue Money   // summed market values, when the source publishes them
}

// SectorBreakdown groups a snapshot's holdings by sector, heaviest first.
// Sources that do not publish sectors aggregate under "Unknown".
func (s *Snapshot) SectorBreakdown() []SectorLine {
	bySector := make(map[string]*SectorLine)
	var order []string
	for h := range s.Holdings() {
		sector := h.Sector
		if sector == "" {
			sector = "Unknown"
		}
		line, ok := bySector[sector]
		if !ok {
			line = &SectorLine{Sector: sector}
			bySector[sector] = line
			order = append(order, sector)
		}
		line.Holdings++
		line.Weight += h.Weight
		line.MarketValue = line.MarketValue.Add(h.MarketValue)
	}

	total := s.TotalWeight()
	lines := make([]SectorLine, 0, len(order))
	for _, sector := range order {
		line := *bySector[sector]
		if total > 0 {
			line.Share = Percent(100 * float64(line.Weight) / float64(total))
		}
		lines = append(lines, line)
	}
	sort.SliceStable(lines, func(i, j int) bool { return lines[i].Weight > lines[j].Weight })
	return lines
}
