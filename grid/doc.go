// Package grid resolves the six time-slot column boundaries of a timetable
// page from fragment geometry.
//
// Resolution is performed by types implementing the [ColumnResolver]
// interface. Three strategies exist, tried in priority order by [Resolve]:
//
//   - [TimeHeaderResolver] - clusters the x-positions of the printed
//     clock-time column headers
//   - [BreakLunchResolver] - derives spans algebraically from the positions
//     of the vertical "BREAK" and "LUNCH" letter columns
//   - [StaticResolver] - a hardcoded span table tuned from typical layouts
//
// Column boundaries are scoped to one page; layouts differ between documents.
package grid
