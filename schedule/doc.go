// Package schedule provides time math over the six canonical slots, the
// free-room query exposed to collaborators, and the atomic persistence
// boundary for extracted sections.
package schedule
