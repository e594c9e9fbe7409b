package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strconv"
	"time"

	"github.com/ttpr0/go-mapserver/metrics"
	. "github.com/ttpr0/go-mapserver/util"
	"golang.org/x/exp/slog"
)

func ReadRequestBody[T any](r *http.Request) (T, error) {
	var req T
	data, err := io.ReadAll(r.Body)
	if err != nil {
		return req, err
	}
	err = json.Unmarshal(data, &req)
	if err != nil {
		return req, err
	}
	return req, nil
}

func WriteResponse[T any](w http.ResponseWriter, resp T, status int) {
	data, err := json.Marshal(resp)
	if err != nil {
		slog.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(err.Error()))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(data)
}

type Result struct {
	result any
	status int
}

func OK[T any](value T) Result {
	return Result{
		result: value,
		status: http.StatusOK,
	}
}

func BadRequest[T any](value T) Result {
	return Result{
		result: value,
		status: http.StatusBadRequest,
	}
}

func MapPost[F any](app *http.ServeMux, path string, handler func(F) Result) {
	app.HandleFunc("POST "+path, func(w http.ResponseWriter, r *http.Request) {
		slog.Info("POST " + path)
		start := time.Now()
		metrics.RequestsTotal.WithLabelValues(path).Inc()
		defer _ObserveDuration(path, start)

		body, err := ReadRequestBody[F](r)
		if err != nil {
			slog.Error("failed POST "+path, "err", err)
			metrics.RequestFailTotal.WithLabelValues(path).Inc()
			WriteResponse(w, NewErrorResponse(path, err.Error()), http.StatusBadRequest)
			return
		}
		_WriteResult(w, "POST", path, handler(body))
	})
}

func MapGet[F any](app *http.ServeMux, path string, handler func(F) Result) {
	var val F
	typ := reflect.TypeOf(val)
	num_field := typ.NumField()
	fields := NewList[Triple[int, string, reflect.Kind]](num_field)
	for i := 0; i < num_field; i++ {
		field := typ.Field(i)
		tag := field.Tag.Get("json")
		if tag == "" || tag == "-" {
			continue
		}
		switch field.Type.Kind() {
		case reflect.Bool:
			fields.Add(MakeTriple(i, tag, reflect.Bool))
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			fields.Add(MakeTriple(i, tag, reflect.Int))
		case reflect.Float32, reflect.Float64:
			fields.Add(MakeTriple(i, tag, reflect.Float64))
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			fields.Add(MakeTriple(i, tag, reflect.Uint))
		case reflect.String:
			fields.Add(MakeTriple(i, tag, reflect.String))
		}
	}
	app.HandleFunc("GET "+path, func(w http.ResponseWriter, r *http.Request) {
		slog.Info("GET " + path)
		start := time.Now()
		metrics.RequestsTotal.WithLabelValues(path).Inc()
		defer _ObserveDuration(path, start)

		query := r.URL.Query()
		t := reflect.New(typ).Elem()
		for _, field := range fields {
			index := field.A
			name := field.B
			typ := field.C
			value := query.Get(name)
			if value == "" {
				continue
			}
			if err := _SetField(t.Field(index), typ, value); err != nil {
				slog.Error("failed GET "+path, "param", name, "err", err)
				metrics.RequestFailTotal.WithLabelValues(path).Inc()
				WriteResponse(w, NewErrorResponse(path, fmt.Sprintf("invalid value for %s: %q", name, value)), http.StatusBadRequest)
				return
			}
		}
		value := t.Interface().(F)
		_WriteResult(w, "GET", path, handler(value))
	})
}

func _SetField(f reflect.Value, typ reflect.Kind, value string) error {
	switch typ {
	case reflect.Bool:
		num, err := strconv.ParseBool(value)
		if err != nil {
			return err
		}
		f.SetBool(num)
	case reflect.Int:
		num, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return err
		}
		f.SetInt(num)
	case reflect.Uint:
		num, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return err
		}
		f.SetUint(num)
	case reflect.Float64:
		num, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return err
		}
		f.SetFloat(num)
	case reflect.String:
		f.SetString(value)
	}
	return nil
}

func _WriteResult(w http.ResponseWriter, method string, path string, res Result) {
	if res.status != http.StatusOK {
		slog.Error("failed "+method+" "+path, "err", res.result)
		metrics.RequestFailTotal.WithLabelValues(path).Inc()
		WriteResponse(w, NewErrorResponse(path, res.result), res.status)
	} else {
		slog.Debug("successfully finished " + method + " " + path)
		WriteResponse(w, res.result, res.status)
	}
}

func _ObserveDuration(path string, start time.Time) {
	metrics.RequestDurationMs.WithLabelValues(path).Observe(float64(time.Since(start).Microseconds()) / 1000)
}
