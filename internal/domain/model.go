package domain

import (
	"encoding/json"
	"time"
)

// Core domain records decoded from the upstream catalog API. Optional fields
// are pointers so "absent" and "empty" stay distinguishable after decoding.

type Company struct {
	ID             ID      `json:"id"`
	Name           string  `json:"nombre"`
	Description    *string `json:"descripcion"`
	Slug           *string `json:"slug"`
	Featured       bool    `json:"-"`
	Services       []ID    `json:"servicios"`
	Port           ID      `json:"puerto"`
	SecondaryPorts []ID    `json:"puertos_secundarios"`
	Region         *ID     `json:"region"`

	Address *string `json:"direccion"`
	Email   *string `json:"email"`
	Phone   *string `json:"telefono"`
	Website *string `json:"web"`

	Logo    *string  `json:"logo"`
	Gallery []string `json:"imagenes"`

	UpdatedAt *time.Time `json:"updated_at"`
}

// UnmarshalJSON merges the two legacy spellings of the featured flag into one.
func (c *Company) UnmarshalJSON(b []byte) error {
	type alias Company
	aux := struct {
		*alias
		Destacado bool `json:"destacado"`
		Destacada bool `json:"destacada"`
	}{alias: (*alias)(c)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	c.Featured = aux.Destacado || aux.Destacada
	return nil
}

// Ports returns the candidate port set: primary port plus all secondary ones.
func (c Company) Ports() []ID {
	out := make([]ID, 0, 1+len(c.SecondaryPorts))
	if c.Port != "" {
		out = append(out, c.Port)
	}
	out = append(out, c.SecondaryPorts...)
	return out
}

type Service struct {
	ID   ID     `json:"id"`
	Name string `json:"nombre"`
}

// Port belongs to exactly one Area.
type Port struct {
	ID     ID     `json:"id"`
	Name   string `json:"nombre"`
	AreaID ID     `json:"area_id"`
}

type Region struct {
	ID   ID     `json:"id"`
	Name string `json:"nombre"`
}

type Area struct {
	ID   ID     `json:"id"`
	Name string `json:"nombre"`
}

// PagedResult is the shape returned by the paged company query: items is the
// already-sliced page, total the full match count across all pages.
type PagedResult struct {
	Items    []Company `json:"items"`
	Total    int       `json:"total"`
	Page     int       `json:"page"`
	PageSize int       `json:"pageSize"`
}

// EmptyPage is the result of a query that never ran: below the minimum-filter
// threshold locally, or rejected upstream with 400 for the same reason.
func EmptyPage(pageSize int) PagedResult {
	return PagedResult{Items: []Company{}, Total: 0, Page: 1, PageSize: pageSize}
}
