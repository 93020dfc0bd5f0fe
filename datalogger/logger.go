/*
 * This file is part of Go Value Label.
 *
 * Go Value Label is free software: you can redistribute it and/or modify it under
 * the terms of the GNU General Public License as published by the Free Software Foundation,
 * either version 2 of the License, or (at your option) any later version.
 * Go Value Label is distributed in the hope that it will be useful, but WITHOUT ANY
 * WARRANTY; without even the implied warranty of MERCHANTABILITY or FITNESS FOR A
 * PARTICULAR PURPOSE. See the GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License along
 * with Go Value Label. If not, see <https://www.gnu.org/licenses/>.
 */

// Package datalogger records typed rows during a display session and writes
// them out as CSV when the session ends. Column names come from each field's
// Description tag, falling back to the field name.
package datalogger

import (
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"
	"sync"
)

type DataLogger[T any] interface {
	LogRecord(record T)
	Export() error
	Close() error
}

type CSVDataLogger[T any] struct {
	mut         sync.Mutex
	data        []T
	isOpen      bool
	destination io.WriteCloser
}

// CreateCSVDataLogger opens filename for a session's records.
func CreateCSVDataLogger[T any](filename string) (DataLogger[T], error) {
	destination, err := os.Create(filename)
	if err != nil {
		return nil, fmt.Errorf("could not create the record file %s: %v", filename, err)
	}
	return NewCSVDataLogger[T](destination), nil
}

// NewCSVDataLogger wraps an already-open destination; the logger owns it
// from here on.
func NewCSVDataLogger[T any](destination io.WriteCloser) *CSVDataLogger[T] {
	return &CSVDataLogger[T]{isOpen: true, destination: destination}
}

func (logger *CSVDataLogger[T]) LogRecord(record T) {
	logger.mut.Lock()
	defer logger.mut.Unlock()
	logger.data = append(logger.data, record)
}

func (logger *CSVDataLogger[T]) Export() error {
	logger.mut.Lock()
	defer logger.mut.Unlock()
	if !logger.isOpen {
		return fmt.Errorf("cannot export to a closed data logger")
	}

	visibleFields := reflect.VisibleFields(reflect.TypeOf(new(T)).Elem())
	columns := make([]string, len(visibleFields))
	for i, field := range visibleFields {
		columns[i] = field.Name
		if description, found := field.Tag.Lookup("Description"); found {
			columns[i] = description
		}
	}
	if _, err := fmt.Fprintf(logger.destination, "%s\n", strings.Join(columns, ", ")); err != nil {
		return err
	}

	cells := make([]string, len(visibleFields))
	for _, record := range logger.data {
		value := reflect.ValueOf(record)
		for i, field := range visibleFields {
			cells[i] = fmt.Sprintf("%v", value.FieldByIndex(field.Index))
		}
		if _, err := fmt.Fprintf(logger.destination, "%s\n", strings.Join(cells, ", ")); err != nil {
			return err
		}
	}
	return nil
}

func (logger *CSVDataLogger[T]) Close() error {
	logger.mut.Lock()
	defer logger.mut.Unlock()
	if !logger.isOpen {
		return nil
	}
	logger.isOpen = false
	return logger.destination.Close()
}

// NullDataLogger drops every record; it stands in when no record file is
// configured.
type NullDataLogger[T any] struct{}

func CreateNullDataLogger[T any]() DataLogger[T] {
	return &NullDataLogger[T]{}
}

func (*NullDataLogger[T]) LogRecord(record T) {}

func (*NullDataLogger[T]) Export() error { return nil }

func (*NullDataLogger[T]) Close() error { return nil }
