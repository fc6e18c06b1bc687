// Package practicum talks to the homework status API.
//
// The package covers one request shape: GET the status endpoint with an
// OAuth token and a from_date cursor, then decode the JSON answer into a
// typed [Answer]. Every way the exchange can go wrong maps to a distinct
// error type, so callers can match on the failure kind with [errors.As]
// instead of inspecting strings:
//
//   - [ConnectionError]: the request never produced an HTTP response
//   - [ServerError]: the endpoint answered with a non-200 status
//   - [MalformedResponseError]: the body is not the expected shape
//   - [TypeMismatchError]: a field is present but has the wrong type
//   - [APIError]: the server reported a rejection inside a 200 answer
//   - [UnknownVerdictError]: a homework carries an unrecognized status code
//
// [ParseStatus] turns a single [Homework] into the fixed notification text
// for its verdict.
package practicum
